package notation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the notation package.
var (
	// ErrNilSurface is returned when a renderer is created without a surface.
	ErrNilSurface = errors.New("notation: surface is nil")

	// ErrUnsupportedSurface is returned when a surface cannot host the
	// requested backend (a canvas backend needs a PixelSurface, an SVG
	// backend needs a VectorSurface).
	ErrUnsupportedSurface = errors.New("notation: surface does not support backend")

	// ErrUnknownBackend is returned for backend values outside the known set.
	ErrUnknownBackend = errors.New("notation: unknown backend")

	// ErrInvalidDimensions is returned when a surface reports a zero or
	// negative size.
	ErrInvalidDimensions = errors.New("notation: invalid surface dimensions")

	// ErrNoContext is returned by Stave.Draw when no context has been bound.
	ErrNoContext = errors.New("notation: no rendering context")

	// ErrUnknownClef is returned for clef names outside the supported set.
	ErrUnknownClef = errors.New("notation: unknown clef")

	// ErrInvalidTimeSignature is returned for malformed time signature specs.
	ErrInvalidTimeSignature = errors.New("notation: invalid time signature")

	// ErrInvalidStave is returned by Stave.Draw when the stave geometry or
	// options are unusable (non-positive width, spacing or line count).
	ErrInvalidStave = errors.New("notation: invalid stave")

	// ErrInvalidStyle is returned for colour strings that cannot be parsed.
	ErrInvalidStyle = errors.New("notation: invalid style")

	// ErrRestoreUnderflow is returned when Restore is called without Save.
	ErrRestoreUnderflow = errors.New("notation: restore without matching save")
)

// TimeSignatureError reports a time signature spec that could not be parsed.
type TimeSignatureError struct {
	Spec   string
	Reason string
}

func (e *TimeSignatureError) Error() string {
	return fmt.Sprintf("notation: invalid time signature %q: %s", e.Spec, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidTimeSignature.
func (e *TimeSignatureError) Unwrap() error {
	return ErrInvalidTimeSignature
}
