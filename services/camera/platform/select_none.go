//go:build !camera_model_ai_thinker && !camera_model_wrover_kit && !camera_model_esp_eye && !camera_model_m5stack_psram && !camera_model_xiao_esp32s3

package platform

// No camera_model_* tag: the build stops here with
//
//	undefined: CAMERA_MODEL_NOT_SELECTED
//
// Pick exactly one, e.g. -tags camera_model_ai_thinker.
var _ = CAMERA_MODEL_NOT_SELECTED
