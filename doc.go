// Package aioterminal decodes a lazily-pulled stream of terminal input
// characters into a lazily-pulled stream of decoded terminal events.
//
// It implements the control-sequence state machine described at
// https://vt100.net/emu/dec_ansi_parser together with an asynchronous
// wrapper that resolves the standalone-Escape-key ambiguity with a bounded
// timeout. Terminal mode switching, byte-source acquisition, and key-name
// classification are provided as thin, swappable collaborators; the state
// machine and the decode loop are the parts that must get the DEC ANSI
// parser model right.
package aioterminal
