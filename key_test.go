package aioterminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Table ported from original_source/test/test_keys.py, which is also the
// source that resolves spec.md §6's "20"/"29" open question (no duplicate
// entry actually exists there: "20" -> F9, "29" -> F16).
func TestClassifyKey(t *testing.T) {
	cases := []struct {
		name string
		in   Event
		want KeyType
		ok   bool
	}{
		{"tab", Printable('\t'), KeyTab, true},
		{"enter", Printable('\r'), KeyEnter, true},
		{"escape", Printable('\x1b'), KeyEscape, true},
		{"backspace", Printable('\x7f'), KeyBackspace, true},
		{"space", Printable(' '), KeySpace, true},
		{"ordinary letter", Printable('a'), 0, false},

		{"up", ControlSequence{Final: 'A'}, KeyUpArrow, true},
		{"down", ControlSequence{Final: 'B'}, KeyDownArrow, true},
		{"right", ControlSequence{Final: 'C'}, KeyRightArrow, true},
		{"left", ControlSequence{Final: 'D'}, KeyLeftArrow, true},
		{"begin", ControlSequence{Final: 'E'}, KeyBegin, true},
		{"home-H", ControlSequence{Final: 'H'}, KeyHome, true},
		{"end-F", ControlSequence{Final: 'F'}, KeyEnd, true},

		{"home-tilde", ControlSequence{Params: "1", Final: '~'}, KeyHome, true},
		{"insert", ControlSequence{Params: "2", Final: '~'}, KeyInsert, true},
		{"delete", ControlSequence{Params: "3", Final: '~'}, KeyDelete, true},
		{"end-tilde", ControlSequence{Params: "4", Final: '~'}, KeyEnd, true},
		{"pgup", ControlSequence{Params: "5", Final: '~'}, KeyPageUp, true},
		{"pgdown", ControlSequence{Params: "6", Final: '~'}, KeyPageDown, true},
		{"f5", ControlSequence{Params: "15", Final: '~'}, KeyF5, true},
		{"f6", ControlSequence{Params: "17", Final: '~'}, KeyF6, true},
		{"f7", ControlSequence{Params: "18", Final: '~'}, KeyF7, true},
		{"f8", ControlSequence{Params: "19", Final: '~'}, KeyF8, true},
		{"f9 (resolves the '20' ambiguity)", ControlSequence{Params: "20", Final: '~'}, KeyF9, true},
		{"f10", ControlSequence{Params: "21", Final: '~'}, KeyF10, true},
		{"f11", ControlSequence{Params: "23", Final: '~'}, KeyF11, true},
		{"f12", ControlSequence{Params: "24", Final: '~'}, KeyF12, true},
		{"f13", ControlSequence{Params: "25", Final: '~'}, KeyF13, true},
		{"f14", ControlSequence{Params: "26", Final: '~'}, KeyF14, true},
		{"f15", ControlSequence{Params: "28", Final: '~'}, KeyF15, true},
		{"f16 (resolves the '20' ambiguity)", ControlSequence{Params: "29", Final: '~'}, KeyF16, true},
		{"f17", ControlSequence{Params: "31", Final: '~'}, KeyF17, true},
		{"f18", ControlSequence{Params: "32", Final: '~'}, KeyF18, true},
		{"f19", ControlSequence{Params: "33", Final: '~'}, KeyF19, true},
		{"f20", ControlSequence{Params: "34", Final: '~'}, KeyF20, true},

		{"ss3 space", SingleShift3(' '), KeySpace, true},
		{"ss3 tab", SingleShift3('I'), KeyTab, true},
		{"ss3 enter", SingleShift3('M'), KeyEnter, true},
		{"ss3 up", SingleShift3('A'), KeyUpArrow, true},
		{"ss3 down", SingleShift3('B'), KeyDownArrow, true},
		{"ss3 right", SingleShift3('C'), KeyRightArrow, true},
		{"ss3 left", SingleShift3('D'), KeyLeftArrow, true},
		{"ss3 home", SingleShift3('H'), KeyHome, true},
		{"ss3 end", SingleShift3('F'), KeyEnd, true},
		{"ss3 f1", SingleShift3('P'), KeyF1, true},
		{"ss3 f2", SingleShift3('Q'), KeyF2, true},
		{"ss3 f3", SingleShift3('R'), KeyF3, true},
		{"ss3 f4", SingleShift3('S'), KeyF4, true},

		{"unrecognized csi", ControlSequence{Final: 'Z'}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ClassifyKey(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestKeyType_String(t *testing.T) {
	assert.Equal(t, "enter", KeyEnter.String())
	assert.Equal(t, "f16", KeyF16.String())
}
