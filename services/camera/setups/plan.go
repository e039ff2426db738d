package setups

import (
	"campins-go/services/camera/pinmap"
	"campins-go/types"
	"campins-go/x/mathx"
)

// ResourcePlan specifies wiring and operating parameters for one camera board.
// The camera driver's init routine consumes this plan to configure pins.
type ResourcePlan struct {
	Board  string
	I2C    []I2CPlan       // SCCB
	Camera CameraPlan      // parallel sensor bus
	Setup  types.HALConfig // flash LED and power gates
}

type I2CPlan struct {
	ID  string // e.g. "sccb"
	SDA int    // GPIO number
	SCL int    // GPIO number
	Hz  uint32 // bus frequency
}

// CameraPlan holds the sensor-side lines. Unused pins are left as
// pinmap.Unused for the driver to skip.
type CameraPlan struct {
	Bus    string // I2CPlan.ID carrying SCCB
	XCLK   int
	XCLKHz uint32
	PWDN   int
	Reset  int
	Data   [8]int // D0..D7
	VSYNC  int
	HREF   int
	PCLK   int
}

// Options are operating parameters; zero values pick defaults.
type Options struct {
	XCLKHz      uint32
	SCCBHz      uint32
	FlashOnBoot bool
}

const (
	SCCBBusID = "sccb"

	DefaultXCLKHz = 20_000_000
	MinXCLKHz     = 8_000_000
	MaxXCLKHz     = 20_000_000

	DefaultSCCBHz = 100_000
	MinSCCBHz     = 10_000
	MaxSCCBHz     = 400_000
)

// Build derives a ResourcePlan from a validated PinMap.
func Build(b pinmap.Board, pm pinmap.PinMap, opt Options) (ResourcePlan, error) {
	if err := pinmap.Validate(b, pm); err != nil {
		return ResourcePlan{}, err
	}

	xclk := mathx.Clamp(mathx.OrDefault(opt.XCLKHz, DefaultXCLKHz), MinXCLKHz, MaxXCLKHz)
	sccb := mathx.Clamp(mathx.OrDefault(opt.SCCBHz, DefaultSCCBHz), MinSCCBHz, MaxSCCBHz)

	plan := ResourcePlan{
		Board: b.String(),
		I2C:   []I2CPlan{{ID: SCCBBusID, SDA: pm.SIOD, SCL: pm.SIOC, Hz: sccb}},
		Camera: CameraPlan{
			Bus:    SCCBBusID,
			XCLK:   pm.XCLK,
			XCLKHz: xclk,
			PWDN:   pm.PWDN,
			Reset:  pm.Reset,
			Data:   pm.Data,
			VSYNC:  pm.VSYNC,
			HREF:   pm.HREF,
			PCLK:   pm.PCLK,
		},
	}

	// Gates first so the sensor is powered and out of reset before the LED.
	devs := make([]types.HALDevice, 0, 3)
	if pm.PWDN != pinmap.Unused {
		// PWDN is active high; low keeps the sensor powered.
		devs = append(devs, types.HALDevice{ID: "cam-pwdn", Type: types.DeviceGPIOSwitch,
			Params: types.DOutParams{Pin: pm.PWDN, Initial: false, Domain: "camera", Name: "pwdn"}})
	}
	if pm.Reset != pinmap.Unused {
		devs = append(devs, types.HALDevice{ID: "cam-reset", Type: types.DeviceGPIOSwitch,
			Params: types.DOutParams{Pin: pm.Reset, ActiveLow: true, Initial: false, Domain: "camera", Name: "reset"}})
	}
	if pm.LED != pinmap.Unused {
		devs = append(devs, types.HALDevice{ID: "flash", Type: types.DeviceGPIOLED,
			Params: types.DOutParams{Pin: pm.LED, Initial: opt.FlashOnBoot}})
	}
	plan.Setup = types.HALConfig{Devices: devs}
	return plan, nil
}
