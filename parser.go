package aioterminal

// Parser drives the DEC ANSI state machine for a single decode session. It
// owns a context exclusively; it must not be shared across goroutines.
type Parser struct {
	ctx *parserContext
}

// NewParser returns a Parser in the initial ground state.
func NewParser() *Parser {
	return &Parser{ctx: newContext()}
}

// Step feeds one code point into the automaton and returns the Event it
// produced, if any. The anywhere table is consulted before the current
// state's transition function; a hit runs its action and then the
// change-state protocol (old state's exit, new state's entry), exactly as
// a miss would via the per-state function's own calls to changeState.
func (p *Parser) Step(code rune) (Event, bool) {
	if entry, ok := anywhereTable[code]; ok {
		emit := entry.action(code, p.ctx)
		p.ctx.changeState(entry.target)
		return emit, emit != nil
	}

	emit := stateTable[p.ctx.state](code, p.ctx)
	return emit, emit != nil
}

// InEscape reports whether the parser is currently sitting in the escape
// state, i.e. it has consumed a bare ESC and is waiting to see whether the
// next byte continues a longer sequence. The Decoder's escape-timeout race
// uses this to decide whether a pending read needs shielding.
func (p *Parser) InEscape() bool {
	return p.ctx.state == stateEscape
}

// forceGround drives the parser directly to ground through changeState
// (the current state's exit action, then ground's entry action), without
// consuming a code point.
// This is the escape-timeout's transition (spec: "on timeout, transition
// to ground"), which happens independently of any input byte.
func (p *Parser) forceGround() {
	p.ctx.changeState(stateGround)
}

// Reset returns the parser to its initial ground state, discarding any
// in-flight accumulators. It is not required for normal operation — a
// Decoder owns exactly one Parser for its whole session — but is useful
// for tests that want to reuse a Parser across independent sequences.
func (p *Parser) Reset() {
	p.ctx = newContext()
}
