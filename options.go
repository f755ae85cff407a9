package notation

const (
	defaultLineSpacing     = 10
	defaultNumLines        = 5
	defaultSpaceAbove      = 4
	defaultSpaceBelow      = 4
	defaultLineColor       = "#999999"
	defaultLineThickness   = 1
	defaultModifierPadding = 10
)

// StaveOption configures a Stave during creation.
//
// Example:
//
//	// Default five line stave
//	s := notation.NewStave(10, 40, 500)
//
//	// Single line percussion stave without an end bar line
//	s := notation.NewStave(10, 40, 500,
//	    notation.WithNumLines(1),
//	    notation.WithBarlines(true, false))
type StaveOption func(*staveOptions)

// staveOptions holds the stave layout configuration.
type staveOptions struct {
	numLines      int
	spacing       float64
	spaceAbove    float64
	spaceBelow    float64
	lineColor     string
	lineThickness float64
	leftBar       bool
	rightBar      bool
}

func defaultStaveOptions() staveOptions {
	return staveOptions{
		numLines:      defaultNumLines,
		spacing:       defaultLineSpacing,
		spaceAbove:    defaultSpaceAbove,
		spaceBelow:    defaultSpaceBelow,
		lineColor:     defaultLineColor,
		lineThickness: defaultLineThickness,
		leftBar:       true,
		rightBar:      true,
	}
}

// WithNumLines sets the number of stave lines.
func WithNumLines(n int) StaveOption {
	return func(o *staveOptions) {
		o.numLines = n
	}
}

// WithLineSpacing sets the distance between stave lines in pixels.
func WithLineSpacing(px float64) StaveOption {
	return func(o *staveOptions) {
		o.spacing = px
	}
}

// WithSpaceAbove sets the blank space above the top line, in staff spaces.
func WithSpaceAbove(spaces float64) StaveOption {
	return func(o *staveOptions) {
		o.spaceAbove = spaces
	}
}

// WithSpaceBelow sets the blank space below the bottom line, in staff
// spaces.
func WithSpaceBelow(spaces float64) StaveOption {
	return func(o *staveOptions) {
		o.spaceBelow = spaces
	}
}

// WithLineColor sets the fill style used for the stave lines.
func WithLineColor(style string) StaveOption {
	return func(o *staveOptions) {
		o.lineColor = style
	}
}

// WithBarlines enables or disables the begin and end bar lines.
func WithBarlines(left, right bool) StaveOption {
	return func(o *staveOptions) {
		o.leftBar = left
		o.rightBar = right
	}
}
