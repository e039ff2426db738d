//go:build camera_model_xiao_esp32s3 && !camera_model_ai_thinker && !camera_model_wrover_kit && !camera_model_esp_eye && !camera_model_m5stack_psram

package platform

import "campins-go/services/camera/pinmap"

// Seeed XIAO ESP32S3 Sense.
const Selected = pinmap.XIAOESP32S3

const (
	PWDN  = pinmap.Unused
	RESET = pinmap.Unused
	XCLK  = 10
	SIOD  = 40
	SIOC  = 39
	D7    = 48
	D6    = 11
	D5    = 12
	D4    = 14
	D3    = 16
	D2    = 18
	D1    = 17
	D0    = 15
	VSYNC = 38
	HREF  = 47
	PCLK  = 13

	// 21 is the user LED and also the SD card chip-select.
	LED = 21
)
