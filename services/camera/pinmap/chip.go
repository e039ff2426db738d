package pinmap

import (
	"golang.org/x/exp/slices"

	"campins-go/x/mathx"
)

// Chip describes what the SoC can do with its GPIOs. It must not include
// wiring choices; those live in the board tables.
type Chip struct {
	Name             string
	GPIOMin, GPIOMax int

	// InputOnly lists pads without an output driver.
	InputOnly []int
	// Missing lists numbers inside the range with no pad.
	Missing []int
}

// Valid reports whether pin exists on the chip.
func (c Chip) Valid(pin int) bool {
	return c.Name != "" && mathx.Between(pin, c.GPIOMin, c.GPIOMax) && !slices.Contains(c.Missing, pin)
}

// CanOutput reports whether pin can drive a line.
func (c Chip) CanOutput(pin int) bool {
	if !c.Valid(pin) {
		return false
	}
	return !slices.Contains(c.InputOnly, pin)
}

var (
	esp32 = Chip{
		Name:    "esp32",
		GPIOMin: 0, GPIOMax: 39,
		InputOnly: []int{34, 35, 36, 37, 38, 39},
		Missing:   []int{20, 24, 28, 29, 30, 31},
	}
	esp32s3 = Chip{
		Name:    "esp32s3",
		GPIOMin: 0, GPIOMax: 48,
		Missing: []int{22, 23, 24, 25},
	}
)
