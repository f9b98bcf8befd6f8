package aioterminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
)

// Byte-source acquisition is, per spec.md §1, an external collaborator:
// the core only ever consumes the CharSource interface. This file supplies
// two implementations — a plain one for any io.Reader, and a cancelable
// one for a terminal file descriptor — so a caller never has to hand-roll
// the OS-specific reader thread the spec describes in §9.

// readerSource adapts an arbitrary io.Reader to CharSource. It cannot
// interrupt a read already in progress: for an arbitrary io.Reader there
// is no portable way to do so, which is exactly why spec.md §1 scopes
// cancelable, OS-specific byte-source acquisition out of the core. Use
// NewFileSource for a real terminal fd when cancellation matters.
type readerSource struct {
	br *bufio.Reader
}

// NewReaderSource wraps r for use as a Decoder's CharSource.
func NewReaderSource(r io.Reader) CharSource {
	return &readerSource{br: bufio.NewReader(r)}
}

func (s *readerSource) Next(ctx context.Context) (rune, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c, _, err := s.br.ReadRune()
	return c, err
}

// fileSource adapts a terminal file descriptor to CharSource, backed by
// github.com/muesli/cancelreader so that canceling ctx unblocks a read
// that is currently parked in the kernel — the same problem the teacher
// solves with its own ctxReader/WaitForRead pair in cancelreader.go, here
// delegated to the dependency the teacher's go.mod already pulls in for
// the purpose.
type fileSource struct {
	cr cancelreader.CancelReader
	br *bufio.Reader

	// pending holds the in-flight read goroutine's result channel across a
	// canceled Next call, the same handoff Decoder.fetch uses for its
	// escape-timeout race in decode.go: a canceled call must not abandon
	// the goroutine it spawned, since s.br is not safe for two goroutines
	// to read concurrently. The next Next call drains pending instead of
	// spawning a second reader.
	pending chan runeResult
}

// NewFileSource wraps f — which must be a terminal — for use as a
// Decoder's CharSource. Call Close when done with it; canceling an
// in-flight Next call (via ctx) does not close the underlying reader.
func NewFileSource(f *os.File) (*FileSource, error) {
	if !isatty.IsTerminal(f.Fd()) {
		return nil, fmt.Errorf("aioterminal: NewFileSource: %s: not a terminal", f.Name())
	}
	cr, err := cancelreader.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("aioterminal: NewFileSource: %w", err)
	}
	return &FileSource{&fileSource{cr: cr, br: bufio.NewReader(cr)}}, nil
}

// FileSource is the CharSource returned by NewFileSource. It additionally
// exposes Close and Cancel, since a real terminal reader is a resource the
// caller must release explicitly.
type FileSource struct {
	*fileSource
}

// Close releases the underlying reader.
func (s *FileSource) Close() error {
	return s.cr.Close()
}

// Cancel unblocks any in-flight Next call immediately, without waiting for
// ctx. It returns true if cancellation is supported on this platform.
func (s *FileSource) Cancel() bool {
	return s.cr.Cancel()
}

type runeResult struct {
	r   rune
	err error
}

func (s *fileSource) Next(ctx context.Context) (rune, error) {
	ch := s.pending
	if ch == nil {
		ch = make(chan runeResult, 1)
		go func() {
			r, _, err := s.br.ReadRune()
			ch <- runeResult{r, err}
		}()
	}

	select {
	case res := <-ch:
		s.pending = nil
		return res.r, res.err
	case <-ctx.Done():
		s.cr.Cancel()
		s.pending = ch
		return 0, ctx.Err()
	}
}
