//go:build tinygo && (esp32 || esp32s3)

package main

import (
	"machine"

	"tinygo.org/x/drivers"

	"campins-go/services/camera/pinmap"
	"campins-go/services/camera/setups"
)

// openSCCB powers the sensor up from the plan's gates and configures the
// SCCB bus. The sensor only answers once the driver has XCLK running.
func openSCCB(plan setups.ResourcePlan) (drivers.I2C, error) {
	if p := plan.Camera.PWDN; p != pinmap.Unused {
		pin := machine.Pin(p)
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.Low()
	}
	if p := plan.Camera.Reset; p != pinmap.Unused {
		pin := machine.Pin(p)
		pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
		pin.High()
	}

	bus := plan.I2C[0]
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: bus.Hz,
		SDA:       machine.Pin(bus.SDA),
		SCL:       machine.Pin(bus.SCL),
	}); err != nil {
		return nil, err
	}
	return i2c, nil
}
