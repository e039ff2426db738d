package setups

import (
	"testing"

	"campins-go/errcode"
	"campins-go/services/camera/pinmap"
	"campins-go/types"
)

func TestBuildAIThinker(t *testing.T) {
	pm := pinmap.MustResolve(pinmap.AIThinker)
	plan, err := Build(pinmap.AIThinker, pm, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if plan.Board != "ai_thinker" {
		t.Fatalf("board = %q", plan.Board)
	}
	if len(plan.I2C) != 1 {
		t.Fatalf("I2C plans = %+v", plan.I2C)
	}
	if got := plan.I2C[0]; got != (I2CPlan{ID: "sccb", SDA: 26, SCL: 27, Hz: DefaultSCCBHz}) {
		t.Fatalf("sccb plan = %+v", got)
	}
	c := plan.Camera
	if c.Bus != "sccb" || c.XCLK != 0 || c.XCLKHz != DefaultXCLKHz || c.PWDN != 32 || c.Reset != pinmap.Unused {
		t.Fatalf("camera plan = %+v", c)
	}
	if c.Data != [8]int{5, 18, 19, 21, 36, 39, 34, 35} || c.VSYNC != 25 || c.HREF != 23 || c.PCLK != 22 {
		t.Fatalf("camera bus = %+v", c)
	}

	// No reset line on this board: pwdn gate + flash only.
	devs := plan.Setup.Devices
	if len(devs) != 2 || devs[0].ID != "cam-pwdn" || devs[1].ID != "flash" {
		t.Fatalf("devices = %+v", devs)
	}
	if devs[0].Type != types.DeviceGPIOSwitch || devs[1].Type != types.DeviceGPIOLED {
		t.Fatalf("device types = %q, %q", devs[0].Type, devs[1].Type)
	}
	if p := devs[1].Params.(types.DOutParams); p.Pin != 4 || p.Initial {
		t.Fatalf("flash params = %+v", p)
	}
	if p := devs[0].Params.(types.DOutParams); p.Pin != 32 || p.Initial || p.Domain != "camera" {
		t.Fatalf("pwdn params = %+v", p)
	}
}

func TestBuildResetGate(t *testing.T) {
	plan, err := Build(pinmap.M5StackPSRAM, pinmap.MustResolve(pinmap.M5StackPSRAM), Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	devs := plan.Setup.Devices
	if len(devs) != 1 || devs[0].ID != "cam-reset" {
		t.Fatalf("devices = %+v", devs)
	}
	if p := devs[0].Params.(types.DOutParams); p.Pin != 15 || !p.ActiveLow {
		t.Fatalf("reset params = %+v", p)
	}
}

func TestBuildClampsFrequencies(t *testing.T) {
	pm := pinmap.MustResolve(pinmap.ESPEye)
	cases := []struct {
		opt        Options
		xclk, sccb uint32
	}{
		{Options{XCLKHz: 10_000_000, SCCBHz: 400_000}, 10_000_000, 400_000},
		{Options{XCLKHz: 1_000, SCCBHz: 1}, MinXCLKHz, MinSCCBHz},
		{Options{XCLKHz: 48_000_000, SCCBHz: 1_000_000}, MaxXCLKHz, MaxSCCBHz},
	}
	for _, c := range cases {
		plan, err := Build(pinmap.ESPEye, pm, c.opt)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if plan.Camera.XCLKHz != c.xclk || plan.I2C[0].Hz != c.sccb {
			t.Errorf("%+v: got xclk=%d sccb=%d", c.opt, plan.Camera.XCLKHz, plan.I2C[0].Hz)
		}
	}
}

func TestBuildFlashOnBoot(t *testing.T) {
	plan, err := Build(pinmap.ESPEye, pinmap.MustResolve(pinmap.ESPEye), Options{FlashOnBoot: true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	devs := plan.Setup.Devices
	if len(devs) != 1 || !devs[0].Params.(types.DOutParams).Initial {
		t.Fatalf("devices = %+v", devs)
	}
}

func TestBuildRejectsInvalidMap(t *testing.T) {
	pm := pinmap.MustResolve(pinmap.AIThinker)
	pm.LED = pm.XCLK
	if _, err := Build(pinmap.AIThinker, pm, Options{}); errcode.Of(err) != errcode.PinConflict {
		t.Fatalf("err = %v", err)
	}
	if _, err := Build(pinmap.None, pm, Options{}); errcode.Of(err) != errcode.ModelNotSelected {
		t.Fatalf("err = %v", err)
	}
}
