package types

// CameraInfo is the discovery detail for the build-selected camera board.
type CameraInfo struct {
	Board  string `json:"board"` // e.g. "ai_thinker"
	Title  string `json:"title"` // e.g. "AI-Thinker ESP32-CAM"
	Chip   string `json:"chip"`  // e.g. "esp32"
	Sensor string `json:"sensor,omitempty"`
	Addr   uint16 `json:"addr,omitempty"` // SCCB address of the sensor
}
