package aioterminal

import "fmt"

// Event is a decoded terminal input event. It is one of Printable,
// SingleShift2, SingleShift3, or ControlSequence.
type Event interface {
	isEvent()
	String() string
}

// Printable is a single Unicode scalar value that was not part of any
// control sequence. C0 control codes (other than CAN, SUB, and ESC, which
// the anywhere table intercepts) are delivered as Printable too; their
// interpretation is the caller's responsibility.
type Printable rune

func (Printable) isEvent() {}

func (p Printable) String() string {
	return fmt.Sprintf("Printable(%q)", rune(p))
}

// SingleShift2 is the character following an "ESC N" single-shift prefix.
type SingleShift2 rune

func (SingleShift2) isEvent() {}

func (s SingleShift2) String() string {
	return fmt.Sprintf("SS2(%q)", rune(s))
}

// SingleShift3 is the character following an "ESC O" single-shift prefix.
type SingleShift3 rune

func (SingleShift3) isEvent() {}

func (s SingleShift3) String() string {
	return fmt.Sprintf("SS3(%q)", rune(s))
}

// ControlSequence is a parsed CSI: "ESC [" or 0x9B, followed by an optional
// private marker, a parameter string, an intermediate string, and exactly
// one final byte in 0x40..0x7E.
//
// Private contains only bytes drawn from {':', '<', '=', '>', '?'}.
// Params contains only digits and ';' (0x30..0x3B); it is transported
// verbatim and never interpreted numerically by the parser. Intermediate
// contains only bytes in 0x20..0x2F and is never longer than two bytes.
//
// Two ControlSequence values are equal iff all four fields are equal,
// which is exactly what Go's == gives for this struct.
type ControlSequence struct {
	Private      string
	Params       string
	Intermediate string
	Final        byte
}

func (ControlSequence) isEvent() {}

func (c ControlSequence) String() string {
	return fmt.Sprintf("CSI(private=%q, params=%q, intermediate=%q, final=%q)",
		c.Private, c.Params, c.Intermediate, string(c.Final))
}
