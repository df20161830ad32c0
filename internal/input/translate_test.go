package input

import (
	"testing"

	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/protocol"
)

var testGeom = capture.Geometry{Width: 1920, Height: 1080, Left: 0, Top: 0}

func TestTranslateMove(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		px   int
		py   int
	}{
		{"center", 0.5, 0.5, 960, 540},
		{"origin", 0, 0, 0, 0},
		{"clamped low", -0.5, -2, 0, 0},
		{"clamped high", 1.5, 3, 1919, 1079},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Translate(protocol.InputEvent{
				Type:   protocol.TypeMouse,
				Action: protocol.ActionMove,
				X:      tt.x,
				Y:      tt.y,
			}, testGeom)
			if len(ops) != 1 || ops[0].Kind != OpMove {
				t.Fatalf("ops = %+v, want one OpMove", ops)
			}
			if ops[0].X != tt.px || ops[0].Y != tt.py {
				t.Errorf("moved to (%d, %d), want (%d, %d)", ops[0].X, ops[0].Y, tt.px, tt.py)
			}
		})
	}
}

func TestTranslateClick(t *testing.T) {
	tests := []struct {
		name   string
		button string
		double bool
		want   []string
	}{
		{"default left", "", false, []string{"left"}},
		{"right", "right", false, []string{"right"}},
		{"middle maps to center", "middle", false, []string{"center"}},
		{"double is two clicks", "left", true, []string{"left", "left"}},
		{"unknown button drops", "back", false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := Translate(protocol.InputEvent{
				Type:   protocol.TypeMouse,
				Action: protocol.ActionClick,
				Button: tt.button,
				Double: tt.double,
			}, testGeom)
			if len(ops) != len(tt.want) {
				t.Fatalf("got %d ops, want %d", len(ops), len(tt.want))
			}
			for i, button := range tt.want {
				if ops[i].Kind != OpClick || ops[i].Button != button {
					t.Errorf("op %d = %+v, want click %q", i, ops[i], button)
				}
			}
		})
	}
}

func TestTranslateScrollFlipsSign(t *testing.T) {
	for _, tt := range []struct {
		deltaY float64
		want   int
	}{
		{120, -120},
		{-120, 120},
		{0, 0},
	} {
		ops := Translate(protocol.InputEvent{
			Type:   protocol.TypeMouse,
			Action: protocol.ActionScroll,
			DeltaY: tt.deltaY,
		}, testGeom)
		if len(ops) != 1 || ops[0].Kind != OpScroll {
			t.Fatalf("ops = %+v, want one OpScroll", ops)
		}
		if ops[0].ScrollY != tt.want {
			t.Errorf("deltaY %v: ScrollY = %d, want %d", tt.deltaY, ops[0].ScrollY, tt.want)
		}
	}
}

func TestTranslateUnknownActionDrops(t *testing.T) {
	if ops := Translate(protocol.InputEvent{Type: protocol.TypeMouse, Action: "drag"}, testGeom); ops != nil {
		t.Fatalf("ops = %+v, want nil", ops)
	}
	if ops := Translate(protocol.InputEvent{Type: "gamepad"}, testGeom); ops != nil {
		t.Fatalf("ops = %+v, want nil", ops)
	}
}

func TestResolveKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		code string
		want string
		ok   bool
	}{
		{"single character", "a", "", "a", true},
		{"named key wins over character rule", "Enter", "", "enter", true},
		{"name is case insensitive", "ARROWUP", "", "up", true},
		{"escape alias", "Escape", "", "esc", true},
		{"name wins over code", "Enter", "KeyQ", "enter", true},
		{"code fallback", "", "Digit5", "5", true},
		{"code numpad", "", "NumpadAdd", "+", true},
		{"unresolvable", "Unidentified", "SomeCode", "", false},
		{"empty", "", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveKey(tt.key, tt.code)
			if ok != tt.ok || got != tt.want {
				t.Errorf("resolveKey(%q, %q) = (%q, %v), want (%q, %v)", tt.key, tt.code, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTranslateKeyboardEventTypes(t *testing.T) {
	tests := []struct {
		eventType string
		kind      OpKind
	}{
		{protocol.EventDown, OpKeyDown},
		{protocol.EventUp, OpKeyUp},
		{"press", OpKeyTap},
		{"", OpKeyTap},
	}

	for _, tt := range tests {
		ops := Translate(protocol.InputEvent{
			Type:      protocol.TypeKeyboard,
			Key:       "Enter",
			EventType: tt.eventType,
		}, testGeom)
		if len(ops) != 1 || ops[0].Kind != tt.kind || ops[0].Key != "enter" {
			t.Errorf("eventType %q: ops = %+v, want kind %d for enter", tt.eventType, ops, tt.kind)
		}
	}
}

func TestTranslateKeyboardUnresolvableDrops(t *testing.T) {
	ops := Translate(protocol.InputEvent{
		Type:      protocol.TypeKeyboard,
		Key:       "Unidentified",
		EventType: protocol.EventDown,
	}, testGeom)
	if ops != nil {
		t.Fatalf("ops = %+v, want nil", ops)
	}
}
