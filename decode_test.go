package aioterminal

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedItem struct {
	r     rune
	delay time.Duration
}

// scriptedSource is a CharSource over a fixed script of runes, each
// optionally delayed, used to exercise the Decoder's escape-timeout race
// without touching a real terminal.
type scriptedSource struct {
	items []scriptedItem
	i     int
}

func (s *scriptedSource) Next(ctx context.Context) (rune, error) {
	if s.i >= len(s.items) {
		return 0, io.EOF
	}
	it := s.items[s.i]
	s.i++
	if it.delay > 0 {
		select {
		case <-time.After(it.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return it.r, nil
}

// TestDecoder_BareEscapeTimeout is spec.md §8 scenario 8: "\x1b" then a
// 0.1s pause then "A", with escape_timeout = 1ms.
func TestDecoder_BareEscapeTimeout(t *testing.T) {
	src := &scriptedSource{items: []scriptedItem{
		{r: '\x1b'},
		{r: 'A', delay: 100 * time.Millisecond},
	}}
	d := NewDecoder(src, WithEscapeTimeout(time.Millisecond))
	ctx := context.Background()

	ev, err := d.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Printable('\x1b'), ev)

	ev, err = d.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Printable('A'), ev)

	_, err = d.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

// TestDecoder_EscapeFollowedWithinTimeoutIsNotStandalone checks spec.md §8
// invariant 4's second half: ESC immediately followed (within the timeout)
// by bytes that drive the machine out of the escape state never produces a
// bare Escape event.
func TestDecoder_EscapeFollowedWithinTimeoutIsNotStandalone(t *testing.T) {
	src := &scriptedSource{items: []scriptedItem{
		{r: '\x1b'}, {r: '['}, {r: 'A'},
	}}
	d := NewDecoder(src, WithEscapeTimeout(50*time.Millisecond))
	ctx := context.Background()

	ev, err := d.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, ControlSequence{Final: 'A'}, ev)

	_, err = d.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

// TestDecoder_EscapeAsLastInputBeforeEOF covers spec.md §4.3's "On
// upstream end during the wait, emit the bare Escape and then terminate."
func TestDecoder_EscapeAsLastInputBeforeEOF(t *testing.T) {
	src := &scriptedSource{items: []scriptedItem{{r: '\x1b'}}}
	d := NewDecoder(src, WithEscapeTimeout(time.Second))
	ctx := context.Background()

	ev, err := d.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, Printable('\x1b'), ev)

	_, err = d.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestDecoder_OrdinaryTextInOrder(t *testing.T) {
	src := &scriptedSource{items: []scriptedItem{{r: 't'}, {r: 'e'}, {r: 's'}, {r: 't'}}}
	d := NewDecoder(src)
	ctx := context.Background()

	var got []Event
	for {
		ev, err := d.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, ev)
	}
	assert.Equal(t, []Event{Printable('t'), Printable('e'), Printable('s'), Printable('t')}, got)
}

func TestDecoder_CancellationPropagatesFromPlainFetch(t *testing.T) {
	src := &scriptedSource{items: []scriptedItem{{r: 'x', delay: time.Hour}}}
	d := NewDecoder(src)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecoder_CancellationDuringEscapeTimeoutRace(t *testing.T) {
	src := &scriptedSource{items: []scriptedItem{{r: '\x1b'}, {r: 'x', delay: time.Hour}}}
	d := NewDecoder(src, WithEscapeTimeout(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	// A single Next call consumes the ESC (no event yet) and then sits in
	// the escape-timeout race, which the cancellation interrupts before
	// the (1 hour) timer or the (1 hour) delayed read ever resolve.
	_, err := d.Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
