package aioterminal

// state is the DEC ANSI parser's state discriminant. See
// https://vt100.net/emu/dec_ansi_parser for the automaton this models.
type state uint8

const (
	stateGround state = iota
	stateEscape
	stateEscapeIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiIgnore
	stateDcsEntry
	stateDcsParam
	stateDcsIntermediate
	stateDcsPassthrough
	stateDcsIgnore
	stateOscString
	stateSosPmApcString

	stateCount
)

// --- actions -----------------------------------------------------------
//
// These mirror the action set of the DEC ANSI parser model. execute, hook,
// put, unhook, oscStart, oscPut, and oscEnd are reserved extension points:
// this specification never emits an Event for them, but their call sites
// are preserved so a future DCS/OSC payload feature can be added without
// restructuring the state machine.

func actionIgnore(code rune, ctx *parserContext) Event { return nil }

func actionPrint(code rune, ctx *parserContext) Event {
	switch ctx.singleShift {
	case 2:
		ctx.singleShift = 0
		return SingleShift2(code)
	case 3:
		ctx.singleShift = 0
		return SingleShift3(code)
	default:
		return Printable(code)
	}
}

func actionExecute(code rune, ctx *parserContext) Event { return nil }

func actionCollect(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x20 && code <= 0x2F:
		ctx.intermediateChars = append(ctx.intermediateChars, byte(code))
	case code == 0x3A || (code >= 0x3C && code <= 0x3F):
		ctx.privateMarkers = append(ctx.privateMarkers, byte(code))
	}
	return nil
}

func actionParam(code rune, ctx *parserContext) Event {
	ctx.params = append(ctx.params, byte(code))
	return nil
}

func actionEscDispatch(code rune, ctx *parserContext) Event {
	switch code {
	case 0x4E: // 'N'
		ctx.singleShift = 2
	case 0x4F: // 'O'
		ctx.singleShift = 3
	}
	return nil
}

func actionCsiDispatch(code rune, ctx *parserContext) Event {
	return ControlSequence{
		Private:      string(ctx.privateMarkers),
		Params:       string(ctx.params),
		Intermediate: string(ctx.intermediateChars),
		Final:        byte(code),
	}
}

func actionPut(code rune, ctx *parserContext) Event    { return nil }
func actionOscPut(code rune, ctx *parserContext) Event { return nil }
func entryClear(ctx *parserContext)                    { ctx.clear() }
func entryHook(ctx *parserContext)                     {}
func exitUnhook(ctx *parserContext)                    {}
func entryOscStart(ctx *parserContext)                 {}
func exitOscEnd(ctx *parserContext)                    {}

// --- anywhere table ------------------------------------------------------
//
// Consulted before the per-state transition table. A match both performs
// the action and runs the change-state protocol (old state's exit, new
// state's entry) regardless of what the current state was.

type anywhereEntry struct {
	action func(code rune, ctx *parserContext) Event
	target state
}

var anywhereTable = buildAnywhereTable()

func buildAnywhereTable() map[rune]anywhereEntry {
	t := make(map[rune]anywhereEntry, 32)
	for _, c := range []rune{0x18, 0x1A} { // CAN, SUB
		t[c] = anywhereEntry{actionExecute, stateGround}
	}
	for c := rune(0x80); c <= 0x9A; c++ { // C1 except DCS(0x90), SOS(0x98)
		if c == 0x90 || c == 0x98 {
			continue
		}
		t[c] = anywhereEntry{actionExecute, stateGround}
	}
	t[0x9C] = anywhereEntry{actionIgnore, stateGround}          // ST
	t[0x1B] = anywhereEntry{actionIgnore, stateEscape}          // ESC
	t[0x9B] = anywhereEntry{actionIgnore, stateCsiEntry}        // CSI
	t[0x90] = anywhereEntry{actionIgnore, stateDcsEntry}        // DCS
	t[0x9D] = anywhereEntry{actionIgnore, stateOscString}       // OSC
	for _, c := range []rune{0x98, 0x9E, 0x9F} {                // SOS, PM, APC
		t[c] = anywhereEntry{actionIgnore, stateSosPmApcString}
	}
	return t
}

// --- entry / exit tables -------------------------------------------------

var entryActions = [stateCount]func(*parserContext){
	stateEscape:   entryClear,
	stateCsiEntry: entryClear,
	stateDcsEntry: entryClear,
	stateDcsPassthrough: func(ctx *parserContext) { entryHook(ctx) },
	stateOscString:      func(ctx *parserContext) { entryOscStart(ctx) },
}

var exitActions = [stateCount]func(*parserContext){
	stateDcsPassthrough: func(ctx *parserContext) { exitUnhook(ctx) },
	stateOscString:      func(ctx *parserContext) { exitOscEnd(ctx) },
}

// --- per-state transition functions --------------------------------------
//
// Each function handles one code point that the anywhere table did not
// intercept. It may emit an Event and/or drive ctx through changeState.

type stepFunc func(code rune, ctx *parserContext) Event

var stateTable = [stateCount]stepFunc{
	stateGround:             stepGround,
	stateEscape:             stepEscape,
	stateEscapeIntermediate: stepEscapeIntermediate,
	stateCsiEntry:           stepCsiEntry,
	stateCsiParam:           stepCsiParam,
	stateCsiIntermediate:    stepCsiIntermediate,
	stateCsiIgnore:          stepCsiIgnore,
	stateDcsEntry:           stepDcsEntry,
	stateDcsParam:           stepDcsParam,
	stateDcsIntermediate:    stepDcsIntermediate,
	stateDcsPassthrough:     stepDcsPassthrough,
	stateDcsIgnore:          stepDcsIgnore,
	stateOscString:          stepOscString,
	stateSosPmApcString:     stepSosPmApcString,
}

func stepGround(code rune, ctx *parserContext) Event {
	if code >= 0x00 && code <= 0x1F {
		return actionPrint(code, ctx)
	}
	if (code >= 0x20 && code <= 0x7F) || code > 0xFF {
		return actionPrint(code, ctx)
	}
	return nil
}

func stepEscape(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionExecute(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateEscapeIntermediate)
		return emit
	case code == 0x50: // 'P'
		ctx.changeState(stateDcsEntry)
		return nil
	case code == 0x58 || code == 0x5E || code == 0x5F: // 'X', '^', '_'
		ctx.changeState(stateSosPmApcString)
		return nil
	case code == 0x5B: // '['
		ctx.changeState(stateCsiEntry)
		return nil
	case code == 0x5D: // ']'
		ctx.changeState(stateOscString)
		return nil
	case code >= 0x30 && code <= 0x7E:
		emit := actionEscDispatch(code, ctx)
		ctx.changeState(stateGround)
		return emit
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepEscapeIntermediate(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionExecute(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		return actionCollect(code, ctx)
	case code >= 0x30 && code <= 0x7E:
		emit := actionEscDispatch(code, ctx)
		ctx.changeState(stateGround)
		return emit
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepCsiEntry(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionExecute(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateCsiIntermediate)
		return emit
	case code == 0x3A:
		ctx.changeState(stateCsiIgnore)
		return nil
	case code >= 0x30 && code <= 0x3B:
		emit := actionParam(code, ctx)
		ctx.changeState(stateCsiParam)
		return emit
	case code >= 0x3C && code <= 0x3F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateCsiParam)
		return emit
	case code >= 0x40 && code <= 0x7E:
		emit := actionCsiDispatch(code, ctx)
		ctx.changeState(stateGround)
		return emit
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepCsiParam(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionExecute(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateCsiIntermediate)
		return emit
	case (code >= 0x30 && code <= 0x39) || code == 0x3B:
		return actionParam(code, ctx)
	case code == 0x3A || (code >= 0x3C && code <= 0x3F):
		ctx.changeState(stateCsiIgnore)
		return nil
	case code >= 0x40 && code <= 0x7E:
		emit := actionCsiDispatch(code, ctx)
		ctx.changeState(stateGround)
		return emit
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepCsiIntermediate(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionExecute(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		// spec.md §3: intermediate bytes are length <= 2. A third
		// intermediate byte makes the sequence malformed; resync via
		// csiIgnore rather than let actionCsiDispatch emit a longer
		// Intermediate field than the invariant allows.
		if len(ctx.intermediateChars) >= 2 {
			ctx.changeState(stateCsiIgnore)
			return nil
		}
		return actionCollect(code, ctx)
	case code >= 0x30 && code <= 0x3F:
		ctx.changeState(stateCsiIgnore)
		return nil
	case code >= 0x40 && code <= 0x7E:
		emit := actionCsiDispatch(code, ctx)
		ctx.changeState(stateGround)
		return emit
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepCsiIgnore(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionExecute(code, ctx)
	case (code >= 0x20 && code <= 0x3F) || code == 0x7F:
		return actionIgnore(code, ctx)
	case code >= 0x40 && code <= 0x7E: // corrected from the source's "0x40 < -code"
		ctx.changeState(stateGround)
		return nil
	}
	return nil
}

func stepDcsEntry(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionIgnore(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateDcsIntermediate)
		return emit
	case code == 0x3A:
		ctx.changeState(stateDcsIgnore)
		return nil
	case code >= 0x30 && code <= 0x3B:
		emit := actionParam(code, ctx)
		ctx.changeState(stateDcsParam)
		return emit
	case code >= 0x3C && code <= 0x3F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateDcsParam)
		return emit
	case code >= 0x40 && code <= 0x7E:
		ctx.changeState(stateDcsPassthrough)
		return nil
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepDcsParam(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionIgnore(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		emit := actionCollect(code, ctx)
		ctx.changeState(stateDcsIntermediate)
		return emit
	case (code >= 0x30 && code <= 0x39) || code == 0x3B:
		return actionParam(code, ctx)
	case code == 0x3A || (code >= 0x3C && code <= 0x3F):
		ctx.changeState(stateDcsIgnore)
		return nil
	case code >= 0x40 && code <= 0x7E:
		ctx.changeState(stateDcsPassthrough)
		return nil
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepDcsIntermediate(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionIgnore(code, ctx)
	case code >= 0x20 && code <= 0x2F:
		return actionCollect(code, ctx)
	case code >= 0x30 && code <= 0x3F:
		ctx.changeState(stateDcsIgnore)
		return nil
	case code >= 0x40 && code <= 0x7E:
		ctx.changeState(stateDcsPassthrough)
		return nil
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepDcsPassthrough(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x7E:
		return actionPut(code, ctx)
	case code == 0x7F:
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepDcsIgnore(code rune, ctx *parserContext) Event {
	if code >= 0x00 && code <= 0x7F {
		return actionIgnore(code, ctx)
	}
	return nil
}

func stepOscString(code rune, ctx *parserContext) Event {
	switch {
	case code >= 0x00 && code <= 0x1F:
		return actionIgnore(code, ctx)
	case code >= 0x20 && code <= 0x7F:
		return actionOscPut(code, ctx)
	}
	return nil
}

func stepSosPmApcString(code rune, ctx *parserContext) Event {
	if code >= 0x00 && code <= 0x7F {
		return actionIgnore(code, ctx)
	}
	return nil
}
