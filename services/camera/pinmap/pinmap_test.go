package pinmap

import (
	"errors"
	"testing"

	"campins-go/errcode"
)

func TestResolveAIThinker(t *testing.T) {
	pm, err := Resolve(AIThinker)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := map[Signal]int{
		PWDN:  32,
		RESET: Unused,
		XCLK:  0,
		SIOD:  26,
		SIOC:  27,
		D7:    35,
		D6:    34,
		D5:    39,
		D4:    36,
		D3:    21,
		D2:    19,
		D1:    18,
		D0:    5,
		VSYNC: 25,
		HREF:  23,
		PCLK:  22,
		LED:   4,
	}
	if len(want) != len(Signals()) {
		t.Fatalf("scenario covers %d signals, registry has %d", len(want), len(Signals()))
	}
	for s, pin := range want {
		if got := pm.Pin(s); got != pin {
			t.Errorf("%s: got %d want %d", s, got, pin)
		}
	}
}

func TestResolveUnselectedFails(t *testing.T) {
	for _, b := range []Board{None, numBoards, Board(200)} {
		pm, err := Resolve(b)
		if err == nil {
			t.Fatalf("Resolve(%d) returned %+v, want error", b, pm)
		}
		if !errors.Is(err, errcode.ModelNotSelected) {
			t.Fatalf("Resolve(%d) error = %v", b, err)
		}
		if pm != (PinMap{}) {
			t.Fatalf("Resolve(%d) leaked a pin map: %+v", b, pm)
		}
	}
	if got := ErrModelNotSelected.Msg; got != "Camera model not selected" {
		t.Fatalf("diagnostic = %q", got)
	}
}

func TestMustResolvePanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustResolve(None)
}

func TestEveryBoardIsCompleteAndCollisionFree(t *testing.T) {
	for _, b := range Boards() {
		pm := MustResolve(b)
		seen := map[int]Signal{}
		pm.Each(func(s Signal, pin int) {
			if pin < 0 && pin != Unused {
				t.Errorf("%s/%s: bad pin %d", b, s, pin)
			}
			if pin == Unused {
				return
			}
			if prev, ok := seen[pin]; ok {
				t.Errorf("%s: gpio%d shared by %s and %s", b, pin, prev, s)
			}
			seen[pin] = s
		})
		if err := Validate(b, pm); err != nil {
			t.Errorf("Validate(%s): %v", b, err)
		}
	}
}

func TestResolveIsStable(t *testing.T) {
	for _, b := range Boards() {
		a := MustResolve(b)
		a.Data[0] = 99 // mutate the copy
		if MustResolve(b) == a {
			t.Fatalf("%s: registry aliased by returned PinMap", b)
		}
		if MustResolve(b) != MustResolve(b) {
			t.Fatalf("%s: Resolve not deterministic", b)
		}
	}
}

// Adding boards must never renumber existing ones.
func TestBoardSelectorsAreAppendOnly(t *testing.T) {
	want := []struct {
		b    Board
		v    uint8
		name string
		tag  string
	}{
		{AIThinker, 1, "ai_thinker", "camera_model_ai_thinker"},
		{WroverKit, 2, "wrover_kit", "camera_model_wrover_kit"},
		{ESPEye, 3, "esp_eye", "camera_model_esp_eye"},
		{M5StackPSRAM, 4, "m5stack_psram", "camera_model_m5stack_psram"},
		{XIAOESP32S3, 5, "xiao_esp32s3", "camera_model_xiao_esp32s3"},
	}
	for _, w := range want {
		if uint8(w.b) != w.v || w.b.String() != w.name || w.b.Tag() != w.tag {
			t.Errorf("board %d: got (%d,%q,%q)", w.v, uint8(w.b), w.b.String(), w.b.Tag())
		}
	}
	if len(Boards()) != len(want) {
		t.Fatalf("Boards() = %v", Boards())
	}
}

func TestParseBoard(t *testing.T) {
	cases := []struct {
		in   string
		want Board
		ok   bool
	}{
		{"ai_thinker", AIThinker, true},
		{" AI_THINKER ", AIThinker, true},
		{"camera_model_esp_eye", ESPEye, true},
		{"xiao_esp32s3", XIAOESP32S3, true},
		{"", None, false},
		{"none", None, false},
		{"ttgo_t_journal", None, false},
	}
	for _, c := range cases {
		got, err := ParseBoard(c.in)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("ParseBoard(%q) = %v, %v", c.in, got, err)
		}
		if err != nil && errcode.Of(err) != errcode.ModelNotSelected {
			t.Errorf("ParseBoard(%q) code = %q", c.in, errcode.Of(err))
		}
	}
}

func TestSignalsOrderAndNames(t *testing.T) {
	ss := Signals()
	if len(ss) != 17 || ss[0] != PWDN || ss[len(ss)-1] != LED {
		t.Fatalf("Signals() = %v", ss)
	}
	if D0.String() != "d0" || D7.String() != "d7" || SIOC.String() != "sioc" {
		t.Fatal("signal names changed unexpectedly")
	}
	if Signal(250).String() != "signal?" {
		t.Fatal("out-of-range signal name")
	}
	var pm PinMap
	if pm.Pin(Signal(250)) != Unused {
		t.Fatal("unknown signal should read Unused")
	}
}

func TestBoardAccessorsOnUnknown(t *testing.T) {
	if None.String() != "none" || None.Tag() != "" || None.Title() != "" {
		t.Fatal("None accessors")
	}
	if _, ok := None.SD(); ok {
		t.Fatal("None has no SD slot")
	}
	if None.Chip().Name != "" {
		t.Fatal("None has no chip")
	}
}

func TestChipIsCopied(t *testing.T) {
	c := AIThinker.Chip()
	c.InputOnly[0] = 0
	if !AIThinker.Chip().CanOutput(0) || AIThinker.Chip().CanOutput(34) {
		t.Fatal("chip descriptor aliased")
	}
}
