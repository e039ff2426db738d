//go:build camera_model_m5stack_psram && !camera_model_ai_thinker && !camera_model_wrover_kit && !camera_model_esp_eye && !camera_model_xiao_esp32s3

package platform

import "campins-go/services/camera/pinmap"

// M5Stack Camera with PSRAM.
const Selected = pinmap.M5StackPSRAM

const (
	PWDN  = pinmap.Unused
	RESET = 15
	XCLK  = 27
	SIOD  = 25
	SIOC  = 23
	D7    = 19
	D6    = 36
	D5    = 18
	D4    = 39
	D3    = 5
	D2    = 34
	D1    = 35
	D0    = 32
	VSYNC = 22
	HREF  = 26
	PCLK  = 21

	LED = pinmap.Unused
)
