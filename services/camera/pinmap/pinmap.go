// Package pinmap is the camera board pin registry: the fixed set of sensor and
// indicator signals, one immutable PinMap per supported board, and the
// closed resolution from a Board selector to its PinMap.
package pinmap

// Unused marks a signal with no physical pin on a board. Drivers skip
// configuring it.
const Unused = -1

// Signal names one logical camera line.
type Signal uint8

const (
	PWDN  Signal = iota // power-down, active high
	RESET               // sensor reset, active low
	XCLK                // external clock to the sensor
	SIOD                // SCCB data (SDA)
	SIOC                // SCCB clock (SCL)
	D0
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	VSYNC
	HREF
	PCLK
	LED // indicator or flash lamp

	numSignals
)

var signalNames = [numSignals]string{
	PWDN: "pwdn", RESET: "reset", XCLK: "xclk", SIOD: "siod", SIOC: "sioc",
	D0: "d0", D1: "d1", D2: "d2", D3: "d3", D4: "d4", D5: "d5", D6: "d6", D7: "d7",
	VSYNC: "vsync", HREF: "href", PCLK: "pclk", LED: "led",
}

func (s Signal) String() string {
	if s >= numSignals {
		return "signal?"
	}
	return signalNames[s]
}

// Output reports whether the board drives this line (as opposed to reading it).
func (s Signal) Output() bool {
	switch s {
	case PWDN, RESET, XCLK, SIOD, SIOC, LED:
		return true
	}
	return false
}

// Optional reports whether a board may leave the signal Unused.
func (s Signal) Optional() bool {
	return s == PWDN || s == RESET || s == LED
}

// Signals returns every signal in declaration order.
func Signals() []Signal {
	out := make([]Signal, numSignals)
	for i := range out {
		out[i] = Signal(i)
	}
	return out
}

// PinMap holds the GPIO number (or Unused) for every camera signal of one
// board. It is a plain value: copies never alias the registry tables.
type PinMap struct {
	PWDN  int `json:"pwdn" toml:"pwdn"`
	Reset int `json:"reset" toml:"reset"`
	XCLK  int `json:"xclk" toml:"xclk"`
	SIOD  int `json:"siod" toml:"siod"`
	SIOC  int `json:"sioc" toml:"sioc"`

	// Data[0] is D0 (Y2 on OmniVision datasheets) through Data[7] = D7 (Y9).
	Data [8]int `json:"data" toml:"data"`

	VSYNC int `json:"vsync" toml:"vsync"`
	HREF  int `json:"href" toml:"href"`
	PCLK  int `json:"pclk" toml:"pclk"`

	LED int `json:"led" toml:"led"`
}

// Pin returns the GPIO number for s, or Unused.
func (m PinMap) Pin(s Signal) int {
	switch {
	case s == PWDN:
		return m.PWDN
	case s == RESET:
		return m.Reset
	case s == XCLK:
		return m.XCLK
	case s == SIOD:
		return m.SIOD
	case s == SIOC:
		return m.SIOC
	case s >= D0 && s <= D7:
		return m.Data[s-D0]
	case s == VSYNC:
		return m.VSYNC
	case s == HREF:
		return m.HREF
	case s == PCLK:
		return m.PCLK
	case s == LED:
		return m.LED
	}
	return Unused
}

// Each calls fn for every signal in declaration order.
func (m PinMap) Each(fn func(s Signal, pin int)) {
	for s := Signal(0); s < numSignals; s++ {
		fn(s, m.Pin(s))
	}
}
