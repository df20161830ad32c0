package input

// Mouse button names on the wire mapped to injector button identifiers.
// Unknown names are dropped by the translator.
var mouseButtons = map[string]string{
	"left":   "left",
	"right":  "right",
	"middle": "center",
}

// specialKeys resolves case-insensitive key names to injector key tokens.
// Both the short names the dashboard normalizes to and the raw
// KeyboardEvent.key names browsers emit are accepted.
var specialKeys = map[string]string{
	"enter":      "enter",
	"esc":        "esc",
	"escape":     "esc",
	"tab":        "tab",
	"backspace":  "backspace",
	"delete":     "delete",
	"space":      "space",
	"shift":      "shift",
	"ctrl":       "ctrl",
	"control":    "ctrl",
	"alt":        "alt",
	"cmd":        "cmd",
	"win":        "cmd",
	"meta":       "cmd",
	"up":         "up",
	"down":       "down",
	"left":       "left",
	"right":      "right",
	"arrowup":    "up",
	"arrowdown":  "down",
	"arrowleft":  "left",
	"arrowright": "right",
	"home":       "home",
	"end":        "end",
	"pageup":     "pageup",
	"pagedown":   "pagedown",
}

// codeKeys resolves physical key codes (KeyboardEvent.code, lowercased)
// for keys that have no usable single-character name, such as numpad and
// punctuation keys.
var codeKeys = map[string]string{
	"space":          "space",
	"shiftleft":      "shift",
	"shiftright":     "shift",
	"controlleft":    "ctrl",
	"controlright":   "ctrl",
	"altleft":        "alt",
	"altright":       "alt",
	"metaleft":       "cmd",
	"metaright":      "cmd",
	"contextmenu":    "menu",
	"digit0":         "0",
	"digit1":         "1",
	"digit2":         "2",
	"digit3":         "3",
	"digit4":         "4",
	"digit5":         "5",
	"digit6":         "6",
	"digit7":         "7",
	"digit8":         "8",
	"digit9":         "9",
	"numpad0":        "0",
	"numpad1":        "1",
	"numpad2":        "2",
	"numpad3":        "3",
	"numpad4":        "4",
	"numpad5":        "5",
	"numpad6":        "6",
	"numpad7":        "7",
	"numpad8":        "8",
	"numpad9":        "9",
	"numpadadd":      "+",
	"numpadsubtract": "-",
	"numpadmultiply": "*",
	"numpaddivide":   "/",
	"numpaddecimal":  ".",
	"bracketleft":    "[",
	"bracketright":   "]",
	"backslash":      `\`,
	"quote":          "'",
	"semicolon":      ";",
	"comma":          ",",
	"period":         ".",
	"slash":          "/",
	"minus":          "-",
	"equal":          "=",
	"backquote":      "`",
}
