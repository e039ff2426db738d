// Package probe checks that a camera sensor answers on the SCCB bus wired by
// the selected board. It reads the product-ID registers; the only write is
// the OV2640 bank select (0xFF) needed to reach them.
package probe

import (
	"golang.org/x/exp/slices"
	"tinygo.org/x/drivers"

	"campins-go/errcode"
)

// Sensor identifies one OmniVision part.
type Sensor struct {
	Name string
	Addr uint16 // 7-bit SCCB address
	PID  uint16 // expected PIDH<<8 | PIDL

	// wide sensors use 16-bit register addresses.
	wide       bool
	pidH, pidL uint16
	// bank is written to 0xFF before reading when non-zero (OV2640).
	bank byte
}

// known lists the sensors shipped on supported boards, probed in order.
var known = []Sensor{
	{Name: "ov2640", Addr: 0x30, PID: 0x2642, pidH: 0x0A, pidL: 0x0B, bank: 0x01},
	{Name: "ov7725", Addr: 0x21, PID: 0x7721, pidH: 0x0A, pidL: 0x0B},
	{Name: "ov3660", Addr: 0x3C, PID: 0x3660, wide: true, pidH: 0x300A, pidL: 0x300B},
	{Name: "ov5640", Addr: 0x3C, PID: 0x5640, wide: true, pidH: 0x300A, pidL: 0x300B},
}

const regBankSel = 0xFF

// Sensors returns the probe order.
func Sensors() []Sensor { return slices.Clone(known) }

// Identify returns the first known sensor whose product ID matches. A bus
// error on one candidate moves on to the next; the last one is kept as the
// cause when nothing matches.
func Identify(bus drivers.I2C) (Sensor, error) {
	var last error
	for _, s := range known {
		pid, err := readPID(bus, s)
		if err != nil {
			last = err
			continue
		}
		if pid == s.PID {
			return s, nil
		}
	}
	return Sensor{}, errcode.Wrap(errcode.SensorNotFound, "probe", last)
}

func readPID(bus drivers.I2C, s Sensor) (uint16, error) {
	if s.bank != 0 {
		if err := bus.Tx(s.Addr, []byte{regBankSel, s.bank}, nil); err != nil {
			return 0, err
		}
	}
	hi, err := readReg(bus, s, s.pidH)
	if err != nil {
		return 0, err
	}
	lo, err := readReg(bus, s, s.pidL)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

func readReg(bus drivers.I2C, s Sensor, reg uint16) (byte, error) {
	var w []byte
	if s.wide {
		w = []byte{byte(reg >> 8), byte(reg)}
	} else {
		w = []byte{byte(reg)}
	}
	r := make([]byte, 1)
	if err := bus.Tx(s.Addr, w, r); err != nil {
		return 0, err
	}
	return r[0], nil
}
