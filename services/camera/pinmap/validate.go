package pinmap

import (
	"strconv"

	"campins-go/errcode"
)

// Validate checks pm against b's chip: every signal is wired or allowed to be
// Unused, pins exist, outputs can drive, and no two signals share a pin.
func Validate(b Board, pm PinMap) error {
	if !b.known() {
		return ErrModelNotSelected
	}
	chip := registry[b].chip
	owner := make(map[int]Signal, numSignals)

	for s := Signal(0); s < numSignals; s++ {
		pin := pm.Pin(s)
		if pin == Unused {
			if !s.Optional() {
				return errcode.New(errcode.MissingSignal, "validate", b.String()+": "+s.String()+" must be wired")
			}
			continue
		}
		if !chip.Valid(pin) {
			return errcode.New(errcode.InvalidPin, "validate", b.String()+": "+s.String()+" on gpio"+strconv.Itoa(pin)+" outside "+chip.Name)
		}
		if s.Output() && !chip.CanOutput(pin) {
			return errcode.New(errcode.InvalidPin, "validate", b.String()+": "+s.String()+" on input-only gpio"+strconv.Itoa(pin))
		}
		if prev, dup := owner[pin]; dup {
			return errcode.New(errcode.PinConflict, "validate", b.String()+": gpio"+strconv.Itoa(pin)+" used by "+prev.String()+" and "+s.String())
		}
		owner[pin] = s
	}
	return nil
}

// Share is a camera signal whose pin is also a microSD slot line.
type Share struct {
	Signal Signal
	Line   string
	Pin    int
}

// SharedWithSD lists camera signals that collide with the board's microSD
// slot. Those lines cannot be used by both at once (e.g. the SD card must
// run in 1-bit mode while the AI-Thinker flash lamp is in use).
func SharedWithSD(b Board) []Share {
	sd, ok := b.SD()
	if !ok {
		return nil
	}
	pm := registry[b].pins
	var out []Share
	pm.Each(func(s Signal, pin int) {
		if pin == Unused {
			return
		}
		for _, l := range sd.Lines {
			if l.Pin == pin {
				out = append(out, Share{Signal: s, Line: l.Name, Pin: pin})
			}
		}
	})
	return out
}
