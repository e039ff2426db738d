package main

import (
	"time"

	"campins-go/services/camera/pinmap"
	"campins-go/services/camera/platform"
	"campins-go/services/camera/setups"
	"campins-go/types"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	platform.Pins().Each(func(s pinmap.Signal, pin int) {
		println("  ", s.String(), pin)
	})

	plan, err := platform.GetSelectedPlan(setups.Options{})
	if err != nil {
		println("camera plan:", err.Error())
	} else {
		println("sccb:", plan.I2C[0].SDA, plan.I2C[0].SCL, plan.I2C[0].Hz, "xclk hz:", plan.Camera.XCLKHz)
		for _, d := range plan.Setup.Devices {
			println("  device", d.ID, d.Type)
		}
	}

	info := platform.Info()
	if err == nil {
		if bus, berr := openSCCB(plan); berr != nil {
			println("sccb:", berr.Error())
		} else if info, err = platform.Identify(bus); err != nil {
			println("sensor:", err.Error())
		}
	}
	if ci, ok := info.Detail.(types.CameraInfo); ok {
		println("camera board:", ci.Title, "("+ci.Board+", "+ci.Chip+")", "sensor:", ci.Sensor, ci.Addr)
	}

	// Periodic stats.
	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat")
	}
}
