//go:build camera_model_wrover_kit && !camera_model_ai_thinker && !camera_model_esp_eye && !camera_model_m5stack_psram && !camera_model_xiao_esp32s3

package platform

import "campins-go/services/camera/pinmap"

// ESP-WROVER-KIT.
const Selected = pinmap.WroverKit

const (
	PWDN  = pinmap.Unused
	RESET = pinmap.Unused
	XCLK  = 21
	SIOD  = 26
	SIOC  = 27
	D7    = 35
	D6    = 34
	D5    = 39
	D4    = 36
	D3    = 19
	D2    = 18
	D1    = 5
	D0    = 4 // also SD DATA1
	VSYNC = 25
	HREF  = 23
	PCLK  = 22

	LED = pinmap.Unused
)
