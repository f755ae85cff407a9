package midi

import (
	"context"
	"errors"
	"fmt"
	"io"

	notation "github.com/gogpu/gg-notation"
)

// DefaultBufferSize matches the 64 byte max packet size of a full speed
// bulk endpoint.
const DefaultBufferSize = 64

// ContextReader is implemented by endpoints whose reads can be cancelled,
// such as *gousb.InEndpoint.
type ContextReader interface {
	ReadContext(ctx context.Context, p []byte) (int, error)
}

// Reader reads note events from an endpoint. An endpoint is any
// io.Reader whose reads return whole USB-MIDI packets; if it also
// implements ContextReader, Next reads through it.
type Reader struct {
	r       io.Reader
	buf     []byte
	pending []Event
	err     error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, buf: make([]byte, DefaultBufferSize)}
}

// Next returns the next note event. It blocks until one arrives, the read
// fails or ctx is done. Events already read are returned before a read
// error. Once Next has returned an error it keeps returning it.
func (r *Reader) Next(ctx context.Context) (Event, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return Event{}, r.err
		}
		if err := ctx.Err(); err != nil {
			return Event{}, err
		}
		n, err := r.read(ctx)
		if n > 0 {
			notation.Logger().Debug("midi: read", "bytes", n, "data", fmt.Sprintf("%08b", r.buf[:n]))
			events, derr := Decode(r.buf[:n])
			if derr != nil {
				r.err = derr
				return Event{}, derr
			}
			r.pending = events
		}
		if err != nil {
			r.err = err
		}
	}
	ev := r.pending[0]
	r.pending = r.pending[1:]
	return ev, nil
}

func (r *Reader) read(ctx context.Context) (int, error) {
	if cr, ok := r.r.(ContextReader); ok {
		return cr.ReadContext(ctx, r.buf)
	}
	return r.r.Read(r.buf)
}

// Listen calls fn for every event until a read fails, fn returns an error
// or ctx is done. Cancellation and io.EOF return nil.
func Listen(ctx context.Context, r io.Reader, fn func(Event) error) error {
	rd := NewReader(r)
	for {
		ev, err := rd.Next(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := fn(ev); err != nil {
			return err
		}
	}
}
