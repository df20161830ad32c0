package input

import (
	"strings"
	"unicode/utf8"

	"github.com/hassanali167/remote-desktop/internal/capture"
	"github.com/hassanali167/remote-desktop/internal/protocol"
)

// OpKind enumerates the primitive actions a backend can execute.
type OpKind int

const (
	OpMove OpKind = iota
	OpClick
	OpScroll
	OpKeyDown
	OpKeyUp
	OpKeyTap
)

// Op is one backend-level action produced by translation.
type Op struct {
	Kind    OpKind
	X, Y    int    // OpMove
	Button  string // OpClick
	ScrollY int    // OpScroll, injector sign convention (positive is up)
	Key     string // OpKey*
}

// Translate maps a wire event to the backend actions it implies. Events
// that cannot be resolved (unknown action, button or key) translate to
// nothing: browser input streams are expected to contain noise, so this
// is a no-op, not an error. Translation is pure and never touches a
// backend.
func Translate(ev protocol.InputEvent, geom capture.Geometry) []Op {
	switch ev.Type {
	case protocol.TypeMouse:
		return translateMouse(ev, geom)
	case protocol.TypeKeyboard:
		return translateKeyboard(ev)
	}
	return nil
}

func translateMouse(ev protocol.InputEvent, geom capture.Geometry) []Op {
	switch ev.Action {
	case protocol.ActionMove:
		x, y := geom.ToPixels(ev.X, ev.Y)
		return []Op{{Kind: OpMove, X: x, Y: y}}

	case protocol.ActionClick:
		name := ev.Button
		if name == "" {
			name = "left"
		}
		button, ok := mouseButtons[name]
		if !ok {
			return nil
		}
		ops := []Op{{Kind: OpClick, Button: button}}
		if ev.Double {
			ops = append(ops, Op{Kind: OpClick, Button: button})
		}
		return ops

	case protocol.ActionScroll:
		// Wire convention: positive deltaY scrolls down. The injector
		// scrolls up for positive arguments, so the sign flips here.
		return []Op{{Kind: OpScroll, ScrollY: -int(ev.DeltaY)}}
	}
	return nil
}

func translateKeyboard(ev protocol.InputEvent) []Op {
	key, ok := resolveKey(ev.Key, ev.Code)
	if !ok {
		return nil
	}

	switch ev.EventType {
	case protocol.EventDown:
		return []Op{{Kind: OpKeyDown, Key: key}}
	case protocol.EventUp:
		return []Op{{Kind: OpKeyUp, Key: key}}
	default:
		// Anything else, including an absent eventType, is one atomic
		// press-then-release.
		return []Op{{Kind: OpKeyTap, Key: key}}
	}
}

// resolveKey tries, in order: the named special-key table, a single
// printable character taken as itself, and the physical key-code table.
func resolveKey(name, code string) (string, bool) {
	if name != "" {
		if key, ok := specialKeys[strings.ToLower(name)]; ok {
			return key, true
		}
		if utf8.RuneCountInString(name) == 1 {
			return name, true
		}
	}
	if code != "" {
		if key, ok := codeKeys[strings.ToLower(code)]; ok {
			return key, true
		}
	}
	return "", false
}
