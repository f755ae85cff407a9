package notation

import (
	"fmt"
	"strings"
)

// Backend selects how a Renderer draws onto its surface.
type Backend uint8

const (
	// BackendCanvas rasterizes directly into the surface pixmap.
	BackendCanvas Backend = iota

	// BackendSVG records drawing commands and serializes them as SVG.
	BackendSVG
)

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case BackendCanvas:
		return "canvas"
	case BackendSVG:
		return "svg"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// ParseBackend converts a backend name ("canvas" or "svg", case
// insensitive) into a Backend.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "canvas", "":
		return BackendCanvas, nil
	case "svg":
		return BackendSVG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}

func (b Backend) valid() bool {
	return b == BackendCanvas || b == BackendSVG
}
