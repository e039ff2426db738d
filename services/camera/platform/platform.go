// Package platform exposes the camera pins chosen at build time with exactly
// one camera_model_* build tag. Without a tag (or with two) the package does
// not compile.
package platform

import (
	"tinygo.org/x/drivers"

	"campins-go/services/camera/pinmap"
	"campins-go/services/camera/probe"
	"campins-go/services/camera/setups"
	"campins-go/types"
)

// Pins returns the selected board's PinMap.
func Pins() pinmap.PinMap { return pinmap.MustResolve(Selected) }

// GetSelectedPlan derives the wiring plan for the selected board.
func GetSelectedPlan(opt setups.Options) (setups.ResourcePlan, error) {
	return setups.Build(Selected, Pins(), opt)
}

// Info describes the selected board for discovery.
func Info() types.Info {
	chip := Selected.Chip()
	return types.Info{
		SchemaVersion: 1,
		Driver:        "camera",
		Detail: types.CameraInfo{
			Board: Selected.String(),
			Title: Selected.Title(),
			Chip:  chip.Name,
		},
	}
}

// Identify probes the SCCB bus and returns Info with the sensor filled in.
// On error the board part of Info is still valid.
func Identify(bus drivers.I2C) (types.Info, error) {
	info := Info()
	s, err := probe.Identify(bus)
	if err != nil {
		return info, err
	}
	ci := info.Detail.(types.CameraInfo)
	ci.Sensor, ci.Addr = s.Name, s.Addr
	info.Detail = ci
	return info, nil
}
