//go:build camera_model_esp_eye && !camera_model_ai_thinker && !camera_model_wrover_kit && !camera_model_m5stack_psram && !camera_model_xiao_esp32s3

package platform

import "campins-go/services/camera/pinmap"

// ESP-EYE.
const Selected = pinmap.ESPEye

const (
	PWDN  = pinmap.Unused
	RESET = pinmap.Unused
	XCLK  = 4
	SIOD  = 18
	SIOC  = 23
	D7    = 36
	D6    = 37
	D5    = 38
	D4    = 39
	D3    = 35
	D2    = 14
	D1    = 13
	D0    = 34
	VSYNC = 5
	HREF  = 27
	PCLK  = 25

	LED = 22
)
