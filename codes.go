package aioterminal

// This file is the Go analogue of original_source/src/aioterminal/codes.py:
// static, read-only enumerations of the C0/C1 control codes and a handful
// of named CSI verbs, kept for human-readable presentation (logging,
// debugging, tests). None of it is exercised on the decode hot path — the
// state machine in state.go never consults these tables.

// C0Name returns the symbolic name of a C0 control code (0x00-0x1F, plus
// SP=0x20 and DEL=0x7F), or "" if code is out of that range.
func C0Name(code byte) string {
	return c0Names[code]
}

// C1Name returns the symbolic name of a C1 control code (0x80-0x9F), or ""
// if code is out of that range. Only the C1 codes xterm names are listed;
// the others in 0x80-0x9F (for example 0x80-0x83) also return "".
func C1Name(code byte) string {
	return c1Names[code]
}

var c0Names = map[byte]string{
	0x00: "NUL", 0x01: "SOH", 0x02: "STX", 0x03: "ETX",
	0x04: "EOT", 0x05: "ENQ", 0x06: "ACK", 0x07: "BEL",
	0x08: "BS", 0x09: "HT", 0x0A: "LF", 0x0B: "VT",
	0x0C: "FF", 0x0D: "CR", 0x0E: "SO", 0x0F: "SI",
	0x10: "DLE", 0x11: "DC1", 0x12: "DC2", 0x13: "DC3",
	0x14: "DC4", 0x15: "NAK", 0x16: "SYN", 0x17: "ETB",
	0x18: "CAN", 0x19: "EM", 0x1A: "SUB", 0x1B: "ESC",
	0x1C: "FS", 0x1D: "GS", 0x1E: "RS", 0x1F: "US",
	0x20: "SP", 0x7F: "DEL",
}

var c1Names = map[byte]string{
	0x84: "IND", 0x85: "NEL", 0x88: "HTS", 0x8D: "RI",
	0x8E: "SS2", 0x8F: "SS3", 0x90: "DCS", 0x96: "SPA",
	0x97: "EPA", 0x98: "SOS", 0x9A: "DECID", 0x9B: "CSI",
	0x9C: "ST", 0x9D: "OSC", 0x9E: "PM", 0x9F: "APC",
}

// csiVerbNames maps a (private, intermediate, final) triple to the xterm
// mnemonic for that CSI, for the small set of sequences this package's
// tests and key classifier care about. It is not an exhaustive port of
// ctlseqs.html — codes.py's ~75KB of doc-comment tables are the reference
// for anything beyond this.
var csiVerbNames = map[ControlSequence]string{
	{Params: "", Intermediate: "", Final: '@'}: "ICH",
	{Private: "?", Intermediate: "", Final: 'J'}: "DECSED",
	{Params: "", Intermediate: "", Final: 'a'}: "HPR",
	{Params: "", Intermediate: "", Final: 'A'}: "CUU",
	{Params: "", Intermediate: "", Final: 'B'}: "CUD",
	{Params: "", Intermediate: "", Final: 'C'}: "CUF",
	{Params: "", Intermediate: "", Final: 'D'}: "CUB",
	{Params: "", Intermediate: "", Final: 'm'}: "SGR",
	{Params: "", Intermediate: "", Final: 'h'}: "SM",
	{Private: "?", Intermediate: "", Final: 'h'}: "DECSET",
	{Private: "?", Intermediate: "", Final: 'l'}: "DECRST",
}

// CSIVerbName looks up the xterm mnemonic for a parsed CSI by its private
// marker, intermediate bytes, and final byte — the parameter string itself
// is not part of the lookup key, matching codes.py's _CSI_NAME_LOOKUP,
// which is keyed on (private, intermediate, final) alone.
func CSIVerbName(c ControlSequence) (string, bool) {
	key := ControlSequence{Private: c.Private, Intermediate: c.Intermediate, Final: c.Final}
	name, ok := csiVerbNames[key]
	return name, ok
}
