package midi

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	notation "github.com/gogpu/gg-notation"
)

func TestDecodePacket(t *testing.T) {
	tests := []struct {
		name   string
		packet []byte
		ok     bool
		want   Event
	}{
		{"note on middle C", []byte{0x09, 0x90, 60, 100}, true, Event{Kind: NoteOn, Note: 60, Velocity: 100}},
		{"velocity zero is note off", []byte{0x09, 0x90, 61, 0}, true, Event{Kind: NoteOff, Note: 61}},
		{"note off status", []byte{0x08, 0x80, 62, 64}, true, Event{Kind: NoteOff, Note: 62, Velocity: 64}},
		{"channel and cable", []byte{0x29, 0x93, 69, 1}, true, Event{Kind: NoteOn, Cable: 2, Channel: 3, Note: 69, Velocity: 1}},
		{"active sensing skipped", []byte{0x0F, 0xFE, 0, 0}, false, Event{}},
		{"single byte on cable 1 skipped", []byte{0x1F, 0xF8, 0, 0}, false, Event{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok, err := DecodePacket(tt.packet)
			if err != nil {
				t.Fatalf("DecodePacket(% x): %v", tt.packet, err)
			}
			if ok != tt.ok || ev != tt.want {
				t.Errorf("DecodePacket(% x) = %+v, %v; want %+v, %v", tt.packet, ev, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDecodePacketErrors(t *testing.T) {
	tests := []struct {
		name   string
		packet []byte
		want   error
	}{
		{"short", []byte{0x09, 0x90, 60}, ErrPacketLength},
		{"control change", []byte{0x0B, 0xB0, 7, 100}, ErrUnknownCodeIndex},
		{"note on header with pitch bend", []byte{0x09, 0xE0, 0, 64}, ErrUnknownStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodePacket(tt.packet); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	buf := []byte{
		0x0F, 0xFE, 0, 0,
		0x09, 0x90, 64, 90,
		0x09, 0x90, 64, 0,
	}
	events, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(events) != 2 || events[0].Kind != NoteOn || events[1].Kind != NoteOff {
		t.Fatalf("events = %+v", events)
	}
	if events[0].Name() != "E" || events[0].Octave() != 4 {
		t.Errorf("first event is %s%d, want E4", events[0].Name(), events[0].Octave())
	}

	for _, n := range []int{1, 3, 5, 7} {
		if _, err := Decode(make([]byte, n)); !errors.Is(err, ErrPacketLength) {
			t.Errorf("Decode(%d bytes) err = %v, want ErrPacketLength", n, err)
		}
	}
	if events, err := Decode(nil); err != nil || len(events) != 0 {
		t.Errorf("Decode(nil) = %v, %v", events, err)
	}
}

func TestPitchName(t *testing.T) {
	want := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	for i, name := range want {
		for _, octave := range []uint8{0, 5, 9} {
			note := octave*12 + uint8(i)
			if got := PitchName(note); got != name {
				t.Errorf("PitchName(%d) = %q, want %q", note, got, name)
			}
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: NoteOn, Note: 60, Velocity: 100}, "NoteOn C4 with 100/127 velocity"},
		{Event{Kind: NoteOff, Note: 70}, "NoteOff A#4"},
		{Event{Kind: NoteOn, Note: 21, Velocity: 1}, "NoteOn A0 with 1/127 velocity"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := EventKind(7).String(); got != "EventKind(7)" {
		t.Errorf("EventKind(7).String() = %q", got)
	}
}

// chunks returns one chunk per Read, like a bulk endpoint returns one
// transfer per read.
type chunks struct {
	data [][]byte
	err  error
}

func (c *chunks) Read(p []byte) (int, error) {
	if len(c.data) == 0 {
		if c.err != nil {
			return 0, c.err
		}
		return 0, io.EOF
	}
	n := copy(p, c.data[0])
	c.data = c.data[1:]
	return n, nil
}

func TestReaderNext(t *testing.T) {
	src := &chunks{data: [][]byte{
		{0x0F, 0xFE, 0, 0},
		{0x09, 0x90, 60, 80, 0x09, 0x90, 67, 80},
		{},
		{0x09, 0x90, 60, 0},
	}}
	r := NewReader(src)
	ctx := context.Background()

	var got []string
	for {
		ev, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		got = append(got, ev.String())
	}
	want := "NoteOn C4 with 80/127 velocity,NoteOn G4 with 80/127 velocity,NoteOff C4"
	if strings.Join(got, ",") != want {
		t.Errorf("events = %q, want %q", got, want)
	}
	if _, err := r.Next(ctx); !errors.Is(err, io.EOF) {
		t.Errorf("Next after EOF err = %v", err)
	}
}

func TestReaderErrorsAreSticky(t *testing.T) {
	r := NewReader(&chunks{data: [][]byte{{0x09, 0x90, 60}, {0x09, 0x90, 60, 80}}})
	for i := 0; i < 2; i++ {
		if _, err := r.Next(context.Background()); !errors.Is(err, ErrPacketLength) {
			t.Fatalf("call %d: err = %v, want ErrPacketLength", i, err)
		}
	}

	boom := errors.New("usb: pipe error")
	r = NewReader(&chunks{data: [][]byte{{0x09, 0x90, 60, 80}}, err: boom})
	if _, err := r.Next(context.Background()); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if _, err := r.Next(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}

// ctxEndpoint blocks in ReadContext until ctx is done.
type ctxEndpoint struct{ reads int }

func (e *ctxEndpoint) Read([]byte) (int, error) {
	panic("Read called on a ContextReader")
}

func (e *ctxEndpoint) ReadContext(ctx context.Context, p []byte) (int, error) {
	e.reads++
	if e.reads == 1 {
		return copy(p, []byte{0x09, 0x90, 72, 50}), nil
	}
	<-ctx.Done()
	return 0, ctx.Err()
}

func TestListen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ep := &ctxEndpoint{}
	var got []Event
	err := Listen(ctx, ep, func(ev Event) error {
		got = append(got, ev)
		cancel()
		return nil
	})
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if len(got) != 1 || got[0].Name() != "C" || got[0].Octave() != 5 {
		t.Errorf("events = %+v", got)
	}

	stop := errors.New("stop")
	src := &chunks{data: [][]byte{{0x09, 0x90, 60, 80}}}
	if err := Listen(context.Background(), src, func(Event) error { return stop }); !errors.Is(err, stop) {
		t.Errorf("Listen err = %v, want %v", err, stop)
	}

	src = &chunks{data: [][]byte{{0x09, 0x90, 60, 80}}}
	if err := Listen(context.Background(), src, func(Event) error { return nil }); err != nil {
		t.Errorf("Listen until EOF err = %v, want nil", err)
	}
}

func TestReaderLogsRawReads(t *testing.T) {
	orig := notation.Logger()
	t.Cleanup(func() { notation.SetLogger(orig) })

	var buf bytes.Buffer
	notation.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := NewReader(&chunks{data: [][]byte{{0x09, 0x90, 60, 80}}})
	if _, err := r.Next(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "midi: read") || !strings.Contains(buf.String(), "00001001") {
		t.Errorf("log = %s", buf.String())
	}
}
