package pinmap

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"campins-go/errcode"
)

// Board selects one supported camera board. The zero value selects nothing.
type Board uint8

const (
	None Board = iota
	AIThinker
	WroverKit
	ESPEye
	M5StackPSRAM
	XIAOESP32S3

	numBoards
)

// SDLine is one microSD slot line and the GPIO it uses.
type SDLine struct {
	Name string `json:"name" toml:"name"`
	Pin  int    `json:"pin" toml:"pin"`
}

// SDSlot describes an on-board microSD socket, if any.
type SDSlot struct {
	Bus   string   `json:"bus" toml:"bus"` // "sdmmc" or "spi"
	Lines []SDLine `json:"lines" toml:"lines"`
}

type entry struct {
	name  string
	tag   string
	title string
	chip  Chip
	pins  PinMap
	sd    *SDSlot
}

// Entries are append-only: a new board gets a new Board constant and a new
// row, existing rows never change.
var registry = [numBoards]entry{
	None: {name: "none"},

	// AI-Thinker ESP32-CAM. No reset line; GPIO4 drives the flash lamp and is
	// also SD DATA1. GPIO33 is the small red LED on the back.
	AIThinker: {
		name:  "ai_thinker",
		tag:   "camera_model_ai_thinker",
		title: "AI-Thinker ESP32-CAM",
		chip:  esp32,
		pins: PinMap{
			PWDN:  32,
			Reset: Unused,
			XCLK:  0,
			SIOD:  26,
			SIOC:  27,
			Data:  [8]int{5, 18, 19, 21, 36, 39, 34, 35},
			VSYNC: 25,
			HREF:  23,
			PCLK:  22,
			LED:   4,
		},
		sd: &SDSlot{Bus: "sdmmc", Lines: []SDLine{
			{"clk", 14}, {"cmd", 15}, {"data0", 2}, {"data1", 4}, {"data2", 12}, {"data3", 13},
		}},
	},

	WroverKit: {
		name:  "wrover_kit",
		tag:   "camera_model_wrover_kit",
		title: "ESP-WROVER-KIT",
		chip:  esp32,
		pins: PinMap{
			PWDN:  Unused,
			Reset: Unused,
			XCLK:  21,
			SIOD:  26,
			SIOC:  27,
			Data:  [8]int{4, 5, 18, 19, 36, 39, 34, 35},
			VSYNC: 25,
			HREF:  23,
			PCLK:  22,
			LED:   Unused,
		},
		sd: &SDSlot{Bus: "sdmmc", Lines: []SDLine{
			{"clk", 14}, {"cmd", 15}, {"data0", 2}, {"data1", 4}, {"data2", 12}, {"data3", 13},
		}},
	},

	ESPEye: {
		name:  "esp_eye",
		tag:   "camera_model_esp_eye",
		title: "ESP-EYE",
		chip:  esp32,
		pins: PinMap{
			PWDN:  Unused,
			Reset: Unused,
			XCLK:  4,
			SIOD:  18,
			SIOC:  23,
			Data:  [8]int{34, 13, 14, 35, 39, 38, 37, 36},
			VSYNC: 5,
			HREF:  27,
			PCLK:  25,
			LED:   22,
		},
	},

	M5StackPSRAM: {
		name:  "m5stack_psram",
		tag:   "camera_model_m5stack_psram",
		title: "M5Stack Camera (PSRAM)",
		chip:  esp32,
		pins: PinMap{
			PWDN:  Unused,
			Reset: 15,
			XCLK:  27,
			SIOD:  25,
			SIOC:  23,
			Data:  [8]int{32, 35, 34, 5, 39, 18, 36, 19},
			VSYNC: 22,
			HREF:  26,
			PCLK:  21,
			LED:   Unused,
		},
	},

	// Seeed XIAO ESP32S3 Sense. The SD card chip-select shares GPIO21 with the
	// user LED.
	XIAOESP32S3: {
		name:  "xiao_esp32s3",
		tag:   "camera_model_xiao_esp32s3",
		title: "Seeed XIAO ESP32S3 Sense",
		chip:  esp32s3,
		pins: PinMap{
			PWDN:  Unused,
			Reset: Unused,
			XCLK:  10,
			SIOD:  40,
			SIOC:  39,
			Data:  [8]int{15, 17, 18, 16, 14, 12, 11, 48},
			VSYNC: 38,
			HREF:  47,
			PCLK:  13,
			LED:   21,
		},
		sd: &SDSlot{Bus: "spi", Lines: []SDLine{
			{"cs", 21}, {"sck", 7}, {"miso", 8}, {"mosi", 9},
		}},
	},
}

// ErrModelNotSelected is returned for the zero or an unknown selector.
var ErrModelNotSelected = errcode.New(errcode.ModelNotSelected, "resolve", "Camera model not selected")

func (b Board) known() bool { return b != None && b < numBoards }

// String returns the short board name ("ai_thinker"), or "none".
func (b Board) String() string {
	if !b.known() {
		return registry[None].name
	}
	return registry[b].name
}

// Tag returns the build tag that selects this board.
func (b Board) Tag() string {
	if !b.known() {
		return ""
	}
	return registry[b].tag
}

// Title is the human-readable board name.
func (b Board) Title() string {
	if !b.known() {
		return ""
	}
	return registry[b].title
}

// Chip returns the board's SoC descriptor.
func (b Board) Chip() Chip {
	if !b.known() {
		return Chip{}
	}
	c := registry[b].chip
	c.InputOnly = slices.Clone(c.InputOnly)
	c.Missing = slices.Clone(c.Missing)
	return c
}

// SD returns the board's microSD wiring, if it has a slot.
func (b Board) SD() (SDSlot, bool) {
	if !b.known() || registry[b].sd == nil {
		return SDSlot{}, false
	}
	sd := *registry[b].sd
	sd.Lines = slices.Clone(sd.Lines)
	return sd, true
}

// Boards lists every supported board in registration order.
func Boards() []Board {
	out := make([]Board, 0, numBoards-1)
	for b := None + 1; b < numBoards; b++ {
		out = append(out, b)
	}
	return out
}

// ParseBoard accepts a board name ("ai_thinker") or its build tag
// ("camera_model_ai_thinker"), case-insensitively.
func ParseBoard(s string) (Board, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range Boards() {
		if s == registry[b].name || s == registry[b].tag {
			return b, nil
		}
	}
	return None, &errcode.E{C: errcode.ModelNotSelected, Op: "parse", Msg: "Camera model not selected: " + strconv.Quote(s)}
}

// Resolve returns the PinMap for b. It never falls back to another board.
func Resolve(b Board) (PinMap, error) {
	if !b.known() {
		return PinMap{}, ErrModelNotSelected
	}
	return registry[b].pins, nil
}

// MustResolve is Resolve for selectors fixed at build time.
func MustResolve(b Board) PinMap {
	pm, err := Resolve(b)
	if err != nil {
		panic(err)
	}
	return pm
}
