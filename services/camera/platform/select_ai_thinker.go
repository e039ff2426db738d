//go:build camera_model_ai_thinker && !camera_model_wrover_kit && !camera_model_esp_eye && !camera_model_m5stack_psram && !camera_model_xiao_esp32s3

package platform

import "campins-go/services/camera/pinmap"

// AI-Thinker ESP32-CAM.
const Selected = pinmap.AIThinker

const (
	PWDN  = 32            // power
	RESET = pinmap.Unused // no reset line
	XCLK  = 0
	SIOD  = 26 // SDA
	SIOC  = 27 // SCL
	D7    = 35
	D6    = 34
	D5    = 39
	D4    = 36
	D3    = 21
	D2    = 19
	D1    = 18
	D0    = 5
	VSYNC = 25
	HREF  = 23
	PCLK  = 22

	// 4 drives the flash lamp (also SD DATA1); 33 is the small red LED.
	LED = 4
)
