package aioterminal

// parserContext is the parser's per-session mutable scratch. It is created
// once per decode session, owned exclusively by the Decoder/Parser that
// drives it, and is never safe to share across goroutines or sessions.
//
// Named parserContext, not context, so that files in this package can still
// import the standard library's "context" package without a package-block
// identifier collision.
type parserContext struct {
	state state

	privateMarkers    []byte
	intermediateChars []byte
	params            []byte

	// singleShift is 0, 2, or 3. It is armed by escDispatch on "ESC N" /
	// "ESC O" and consumed (and reset to 0) by the next print action.
	singleShift int
}

func newContext() *parserContext {
	return &parserContext{state: stateGround}
}

// clear empties the accumulators and resets the single-shift latch. It
// runs on entry to escape, csiEntry, and dcsEntry so that the accumulators
// seen by csiDispatch belong to exactly one sequence.
func (c *parserContext) clear() {
	c.privateMarkers = c.privateMarkers[:0]
	c.intermediateChars = c.intermediateChars[:0]
	c.params = c.params[:0]
	c.singleShift = 0
}

// changeState runs the outgoing state's exit action (if any), then the
// incoming state's entry action (if any), then updates c.state. This
// ordering is preserved even when new == c.state.
func (c *parserContext) changeState(new state) {
	if exit := exitActions[c.state]; exit != nil {
		exit(c)
	}
	if entry := entryActions[new]; entry != nil {
		entry(c)
	}
	c.state = new
}
