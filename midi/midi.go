// Package midi decodes the note events a USB-MIDI keyboard sends on its
// bulk IN endpoint.
//
// USB-MIDI carries MIDI in 4 byte event packets: a header byte holding the
// cable number (high nibble) and code index number (low nibble), followed
// by up to three MIDI bytes. Packets with code index 0xF (single bytes such
// as active sensing) are skipped. Note on packets with a velocity of zero
// are reported as note off, which is how most keyboards release a key.
//
//	r := midi.NewReader(endpoint)
//	for {
//	    ev, err := r.Next(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(ev)
//	}
package midi

import (
	"errors"
	"fmt"
)

// PacketSize is the size of one USB-MIDI event packet.
const PacketSize = 4

// Code index numbers (low nibble of the packet header).
const (
	cinNoteOff    = 0x8
	cinNoteOn     = 0x9
	cinSingleByte = 0xF
)

// Channel voice status bytes, without the channel nibble.
const (
	statusNoteOff = 0x80
	statusNoteOn  = 0x90
)

var (
	// ErrPacketLength is returned when a read is not a whole number of
	// packets.
	ErrPacketLength = errors.New("midi: data length is not a multiple of 4")

	// ErrUnknownCodeIndex is returned for packet headers other than note
	// on, note off and single byte.
	ErrUnknownCodeIndex = errors.New("midi: unknown code index")

	// ErrUnknownStatus is returned for MIDI status bytes that are not note
	// on or note off.
	ErrUnknownStatus = errors.New("midi: unknown status byte")
)

// EventKind is the kind of a note event.
type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
)

func (k EventKind) String() string {
	switch k {
	case NoteOn:
		return "NoteOn"
	case NoteOff:
		return "NoteOff"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is a decoded note event.
type Event struct {
	Kind     EventKind
	Cable    uint8
	Channel  uint8 // 0 based
	Note     uint8 // MIDI note number, 60 is middle C
	Velocity uint8 // 1-127 for NoteOn
}

// Name returns the pitch class of the note, e.g. "C#".
func (e Event) Name() string { return PitchName(e.Note) }

// Octave returns the scientific pitch octave; middle C (60) is octave 4.
func (e Event) Octave() int { return int(e.Note)/12 - 1 }

func (e Event) String() string {
	if e.Kind == NoteOff {
		return fmt.Sprintf("NoteOff %s%d", e.Name(), e.Octave())
	}
	return fmt.Sprintf("NoteOn %s%d with %d/127 velocity", e.Name(), e.Octave(), e.Velocity)
}

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchName maps a MIDI note number to its pitch class name, using sharps.
func PitchName(note uint8) string { return pitchNames[note%12] }

// Decode decodes every packet in buf. Skipped packets produce no event.
func Decode(buf []byte) ([]Event, error) {
	if len(buf)%PacketSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrPacketLength, len(buf))
	}
	var events []Event
	for i := 0; i < len(buf); i += PacketSize {
		ev, ok, err := DecodePacket(buf[i : i+PacketSize])
		if err != nil {
			return events, err
		}
		if ok {
			events = append(events, ev)
		}
	}
	return events, nil
}

// DecodePacket decodes one 4 byte packet. ok is false for packets that
// carry no note event.
func DecodePacket(p []byte) (ev Event, ok bool, err error) {
	if len(p) != PacketSize {
		return Event{}, false, fmt.Errorf("%w: got %d bytes", ErrPacketLength, len(p))
	}

	header, status := p[0], p[1]
	cin := header & 0x0F
	switch cin {
	case cinSingleByte:
		return Event{}, false, nil
	case cinNoteOn, cinNoteOff:
	default:
		return Event{}, false, fmt.Errorf("%w: header %08b", ErrUnknownCodeIndex, header)
	}

	ev = Event{
		Cable:    header >> 4,
		Channel:  status & 0x0F,
		Note:     p[2] & 0x7F,
		Velocity: p[3] & 0x7F,
	}
	switch status & 0xF0 {
	case statusNoteOn:
		ev.Kind = NoteOn
		if ev.Velocity == 0 {
			ev.Kind = NoteOff
		}
	case statusNoteOff:
		ev.Kind = NoteOff
	default:
		return Event{}, false, fmt.Errorf("%w: %08b", ErrUnknownStatus, status)
	}
	return ev, true, nil
}
