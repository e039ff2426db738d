package types

// ------------------------
// HAL configuration
// ------------------------

// Device types understood by the camera driver's init routine.
const (
	DeviceGPIOLED    = "gpio_led"
	DeviceGPIOSwitch = "gpio_switch"
)

type HALConfig struct {
	Devices []HALDevice `json:"devices"`
}

type HALDevice struct {
	ID     string      `json:"id"`     // logical device id, e.g. "flash"
	Type   string      `json:"type"`   // e.g. "gpio_led"
	Params interface{} `json:"params"` // device-specific params (JSON-like)
}

// DOutParams configures a single digital output (LED or switch).
type DOutParams struct {
	Pin       int    `json:"pin"`
	ActiveLow bool   `json:"active_low,omitempty"`
	Initial   bool   `json:"initial,omitempty"` // logical level, before ActiveLow
	Domain    string `json:"domain,omitempty"`  // e.g. "camera"
	Name      string `json:"name,omitempty"`
}

// ------------------------
// Info envelope (retained)
// ------------------------

type Info struct {
	SchemaVersion int         `json:"schema_version"`
	Driver        string      `json:"driver"`
	Detail        interface{} `json:"detail,omitempty"` // e.g. CameraInfo
}
