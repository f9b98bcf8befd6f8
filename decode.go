package aioterminal

import (
	"context"
	"errors"
	"io"
	"time"
)

// CharSource is the upstream lazy character source the Decoder pulls from.
// Next may suspend indefinitely; it must return io.EOF once the stream is
// exhausted and must honor ctx cancellation by returning ctx.Err().
//
// Byte-source acquisition (reading an fd, OS-specific reader threads) is
// explicitly out of the core's scope — see NewReaderSource / NewFileSource
// in reader.go for the collaborator that implements CharSource over a real
// terminal.
type CharSource interface {
	Next(ctx context.Context) (rune, error)
}

// DefaultEscapeTimeout is the bound the Decoder waits, after a bare ESC,
// before deciding the ESC was a standalone Escape keypress rather than the
// prefix of a longer sequence.
const DefaultEscapeTimeout = 1 * time.Second

type decoderConfig struct {
	escapeTimeout time.Duration
}

// Option configures a Decoder.
type Option func(*decoderConfig)

// WithEscapeTimeout overrides DefaultEscapeTimeout.
func WithEscapeTimeout(d time.Duration) Option {
	return func(c *decoderConfig) { c.escapeTimeout = d }
}

var errEscapeTimeout = errors.New("aioterminal: escape timeout elapsed")

type readResult struct {
	code rune
	err  error
}

// Decoder is the async decode loop: it pulls code points from a CharSource,
// drives a Parser, and resolves the standalone-Escape-key ambiguity with a
// bounded, cancellation-safe timeout.
//
// A Decoder owns its Parser and CharSource exclusively; it is not safe for
// concurrent use, and decoding multiple streams requires one Decoder per
// stream.
type Decoder struct {
	src    CharSource
	parser *Parser
	cfg    decoderConfig

	// pending holds the result channel for a read that was started to race
	// against the escape timeout but did not resolve the race (i.e. the
	// timeout won). The next call to Next consumes it directly, with no
	// further timing, fulfilling the "resume waiting for the originally
	// started fetch and continue with it as the next input" contract.
	pending chan readResult

	// pendingErr is set when a call to Next must emit a bare Escape now
	// but report upstream exhaustion on the very next call.
	pendingErr error
}

// NewDecoder returns a Decoder reading from src with DefaultEscapeTimeout,
// or whatever WithEscapeTimeout option overrides it.
func NewDecoder(src CharSource, opts ...Option) *Decoder {
	cfg := decoderConfig{escapeTimeout: DefaultEscapeTimeout}
	for _, o := range opts {
		o(&cfg)
	}
	return &Decoder{src: src, parser: NewParser(), cfg: cfg}
}

// Next pulls from src and drives the parser until exactly one Event is
// ready, then returns it. It returns io.EOF once src is exhausted (after
// first flushing a bare Escape if one was pending), or ctx.Err() if ctx is
// canceled while waiting on src.
func (d *Decoder) Next(ctx context.Context) (Event, error) {
	for {
		if d.pendingErr != nil {
			err := d.pendingErr
			d.pendingErr = nil
			return nil, err
		}

		code, err := d.fetch(ctx)
		if err == errEscapeTimeout {
			d.parser.forceGround()
			return Printable('\x1b'), nil
		}
		if err == io.EOF && d.parser.InEscape() {
			// The escape timeout race ended because upstream closed, not
			// because the timer fired: emit the bare Escape now and report
			// EOF on the next call.
			d.parser.forceGround()
			d.pendingErr = io.EOF
			return Printable('\x1b'), nil
		}
		if err != nil {
			return nil, err
		}

		if ev, ok := d.parser.Step(code); ok {
			return ev, nil
		}
	}
}

// fetch returns the next code point, racing it against the escape timeout
// only while the parser sits in the escape state. Outside that state it is
// a plain, unbounded pull from src.
func (d *Decoder) fetch(ctx context.Context) (rune, error) {
	if d.pending != nil {
		// A fetch begun during a previous (timed-out) escape wait is still
		// in flight; it is the next input regardless of current state.
		res := <-d.pending
		d.pending = nil
		return res.code, res.err
	}

	if !d.parser.InEscape() {
		return d.src.Next(ctx)
	}

	ch := make(chan readResult, 1)
	go func() {
		code, err := d.src.Next(ctx)
		ch <- readResult{code, err}
	}()

	select {
	case res := <-ch:
		return res.code, res.err
	case <-time.After(d.cfg.escapeTimeout):
		// Shield: the fetch above is NOT abandoned. It keeps running and
		// its result is stored for the next call to fetch/Next, so the
		// character it eventually retrieves is never lost.
		d.pending = ch
		return 0, errEscapeTimeout
	case <-ctx.Done():
		// Cancellation is not a timeout: don't synthesize a bare Escape.
		// The goroutine above shares ctx, so it will also observe the
		// cancellation and terminate on its own; we still stash the
		// channel so a stray late write never blocks that goroutine.
		d.pending = ch
		return 0, ctx.Err()
	}
}
