//go:build !(tinygo && (esp32 || esp32s3))

package main

import (
	"tinygo.org/x/drivers"

	"campins-go/errcode"
	"campins-go/services/camera/setups"
)

func openSCCB(setups.ResourcePlan) (drivers.I2C, error) {
	return nil, errcode.New(errcode.Unsupported, "sccb", "no SCCB bus on this target")
}
