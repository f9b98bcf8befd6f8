package aioterminal

import "fmt"

// KeyType is a logical key identifier produced by ClassifyKey. It is a
// pure, side-effect-free lookup defined over Event — it never drives the
// parser and carries no state of its own.
type KeyType int

const (
	KeyUpArrow KeyType = iota + 1
	KeyDownArrow
	KeyRightArrow
	KeyLeftArrow
	KeyBegin
	KeyEnd
	KeyHome
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace
)

var keyTypeNames = map[KeyType]string{
	KeyUpArrow:    "up",
	KeyDownArrow:  "down",
	KeyRightArrow: "right",
	KeyLeftArrow:  "left",
	KeyBegin:      "begin",
	KeyEnd:        "end",
	KeyHome:       "home",
	KeyInsert:     "insert",
	KeyDelete:     "delete",
	KeyPageUp:     "pgup",
	KeyPageDown:   "pgdown",
	KeyF1:         "f1", KeyF2: "f2", KeyF3: "f3", KeyF4: "f4",
	KeyF5: "f5", KeyF6: "f6", KeyF7: "f7", KeyF8: "f8",
	KeyF9: "f9", KeyF10: "f10", KeyF11: "f11", KeyF12: "f12",
	KeyF13: "f13", KeyF14: "f14", KeyF15: "f15", KeyF16: "f16",
	KeyF17: "f17", KeyF18: "f18", KeyF19: "f19", KeyF20: "f20",
	KeyTab:       "tab",
	KeyEnter:     "enter",
	KeyEscape:    "escape",
	KeySpace:     "space",
	KeyBackspace: "backspace",
}

func (k KeyType) String() string {
	if s, ok := keyTypeNames[k]; ok {
		return s
	}
	return fmt.Sprintf("KeyType(%d)", int(k))
}

// csiTildeParamsToKey maps the params string of a "final == '~'" CSI to a
// logical key, per xterm's modifyOtherKeys / common terminfo numbering.
//
// "20" and "29" both appear in some terminal manuals' tables near F9/F16;
// original_source/src/aioterminal/keys.py resolves it as "20" -> F9,
// "29" -> F16, with no actual duplicate entry, so that mapping (not a
// guess) is what's implemented here.
var csiTildeParamsToKey = map[string]KeyType{
	"1": KeyHome, "2": KeyInsert, "3": KeyDelete, "4": KeyEnd,
	"5": KeyPageUp, "6": KeyPageDown,
	"15": KeyF5, "17": KeyF6, "18": KeyF7, "19": KeyF8,
	"20": KeyF9, "21": KeyF10, "23": KeyF11, "24": KeyF12,
	"25": KeyF13, "26": KeyF14, "28": KeyF15, "29": KeyF16,
	"31": KeyF17, "32": KeyF18, "33": KeyF19, "34": KeyF20,
}

// csiFinalToKey maps the final byte of a CSI with empty private and
// intermediate fields to a logical key.
var csiFinalToKey = map[byte]KeyType{
	'A': KeyUpArrow, 'B': KeyDownArrow, 'C': KeyRightArrow, 'D': KeyLeftArrow,
	'E': KeyBegin, 'F': KeyEnd, 'H': KeyHome,
}

// ss3CharToKey maps an SS3-escorted character to a logical key.
var ss3CharToKey = map[rune]KeyType{
	' ': KeySpace,
	'A': KeyUpArrow, 'B': KeyDownArrow, 'C': KeyRightArrow, 'D': KeyLeftArrow,
	'F': KeyEnd, 'H': KeyHome, 'I': KeyTab, 'M': KeyEnter,
	'P': KeyF1, 'Q': KeyF2, 'R': KeyF3, 'S': KeyF4,
}

// ClassifyKey maps a decoded Event to a logical key, exhaustively over
// Event's variants. It returns false when the event does not correspond to
// any named key (e.g. an ordinary printable letter, or an unrecognized
// control sequence) — the caller is expected to fall back to treating the
// Event as ordinary text in that case.
func ClassifyKey(e Event) (KeyType, bool) {
	switch v := e.(type) {
	case Printable:
		switch rune(v) {
		case '\r':
			return KeyEnter, true
		case '\t':
			return KeyTab, true
		case '\x1b':
			return KeyEscape, true
		case ' ':
			return KeySpace, true
		case '\x7f':
			return KeyBackspace, true
		}
		return 0, false

	case ControlSequence:
		if v.Private == "" && v.Intermediate == "" {
			if k, ok := csiFinalToKey[v.Final]; ok {
				return k, true
			}
			if v.Final == '~' {
				if k, ok := csiTildeParamsToKey[v.Params]; ok {
					return k, true
				}
			}
		}
		return 0, false

	case SingleShift3:
		if k, ok := ss3CharToKey[rune(v)]; ok {
			return k, true
		}
		return 0, false

	default:
		return 0, false
	}
}
