//go:build (camera_model_ai_thinker && (camera_model_wrover_kit || camera_model_esp_eye || camera_model_m5stack_psram || camera_model_xiao_esp32s3)) || (camera_model_wrover_kit && (camera_model_esp_eye || camera_model_m5stack_psram || camera_model_xiao_esp32s3)) || (camera_model_esp_eye && (camera_model_m5stack_psram || camera_model_xiao_esp32s3)) || (camera_model_m5stack_psram && camera_model_xiao_esp32s3)

package platform

// More than one camera_model_* tag: the build stops here with
//
//	undefined: CAMERA_MODEL_SELECTED_MORE_THAN_ONCE
var _ = CAMERA_MODEL_SELECTED_MORE_THAN_ONCE
