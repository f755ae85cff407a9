// Package glyph holds the outlines of the notation symbols drawn on a
// stave: clefs and the symbolic time signatures.
//
// Outlines are expressed in staff spaces (the distance between two stave
// lines) with the origin at the glyph's left edge on the top stave line
// and y growing downwards, so y=4 is the bottom line of a five line stave.
package glyph

import "math"

// Point is a position in staff spaces.
type Point struct {
	X, Y float64
}

// OpKind identifies a path operation.
type OpKind uint8

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Op is a single path operation. Pts holds the control points followed by
// the end point; unused entries are zero.
type Op struct {
	Kind OpKind
	Pts  [3]Point
}

// End returns the point the operation ends at. Close has no end point.
func (o Op) End() Point {
	switch o.Kind {
	case OpMoveTo, OpLineTo:
		return o.Pts[0]
	case OpQuadTo:
		return o.Pts[1]
	case OpCubicTo:
		return o.Pts[2]
	default:
		return Point{}
	}
}

// Part is one path of a glyph. A part with a zero StrokeWidth is filled,
// otherwise it is stroked with that width (in staff spaces).
type Part struct {
	Ops         []Op
	StrokeWidth float64
}

// Filled reports whether the part is painted with a fill.
func (p Part) Filled() bool { return p.StrokeWidth == 0 }

// Glyph is a named symbol made of parts.
type Glyph struct {
	Name  string
	Width float64
	Parts []Part
}

// Bounds returns the bounding box of every point in the glyph, control
// points included.
func (g Glyph) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range g.Parts {
		pad := p.StrokeWidth / 2
		for _, op := range p.Ops {
			n := 0
			switch op.Kind {
			case OpMoveTo, OpLineTo:
				n = 1
			case OpQuadTo:
				n = 2
			case OpCubicTo:
				n = 3
			}
			for _, pt := range op.Pts[:n] {
				minX = math.Min(minX, pt.X-pad)
				minY = math.Min(minY, pt.Y-pad)
				maxX = math.Max(maxX, pt.X+pad)
				maxY = math.Max(maxY, pt.Y+pad)
			}
		}
	}
	return minX, minY, maxX, maxY
}

// builder assembles a Part.
type builder struct {
	ops     []Op
	current Point
	width   float64
}

func stroke(width float64) *builder { return &builder{width: width} }
func fill() *builder                { return &builder{} }

func (b *builder) M(x, y float64) *builder {
	b.current = Point{x, y}
	b.ops = append(b.ops, Op{Kind: OpMoveTo, Pts: [3]Point{b.current}})
	return b
}

func (b *builder) L(x, y float64) *builder {
	b.current = Point{x, y}
	b.ops = append(b.ops, Op{Kind: OpLineTo, Pts: [3]Point{b.current}})
	return b
}

func (b *builder) C(c1x, c1y, c2x, c2y, x, y float64) *builder {
	b.current = Point{x, y}
	b.ops = append(b.ops, Op{Kind: OpCubicTo, Pts: [3]Point{{c1x, c1y}, {c2x, c2y}, b.current}})
	return b
}

func (b *builder) Z() *builder {
	b.ops = append(b.ops, Op{Kind: OpClose})
	return b
}

// rect adds a closed axis-aligned rectangle.
func (b *builder) rect(x0, y0, x1, y1 float64) *builder {
	return b.M(x0, y0).L(x1, y0).L(x1, y1).L(x0, y1).Z()
}

// circle adds a closed circle made of four cubic segments.
func (b *builder) circle(cx, cy, r float64) *builder {
	const k = 0.5522847498307936
	o := r * k
	return b.M(cx+r, cy).
		C(cx+r, cy+o, cx+o, cy+r, cx, cy+r).
		C(cx-o, cy+r, cx-r, cy+o, cx-r, cy).
		C(cx-r, cy-o, cx-o, cy-r, cx, cy-r).
		C(cx+o, cy-r, cx+r, cy-o, cx+r, cy).
		Z()
}

// arc adds a circular arc from angle a1 to a2 (radians, increasing
// clockwise on screen), split into segments of at most 90 degrees.
func (b *builder) arc(cx, cy, r, a1, a2 float64) *builder {
	for a2 < a1 {
		a2 += 2 * math.Pi
	}
	n := int(math.Ceil((a2 - a1) / (math.Pi / 2)))
	step := (a2 - a1) / float64(n)

	b.M(cx+r*math.Cos(a1), cy+r*math.Sin(a1))
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		e := s + step
		t := math.Tan((e - s) / 2)
		alpha := math.Sin(e-s) * (math.Sqrt(4+3*t*t) - 1) / 3

		sc, ss := math.Cos(s), math.Sin(s)
		ec, es := math.Cos(e), math.Sin(e)
		x1, y1 := cx+r*sc, cy+r*ss
		x2, y2 := cx+r*ec, cy+r*es
		b.C(x1-alpha*r*ss, y1+alpha*r*sc, x2+alpha*r*es, y2-alpha*r*ec, x2, y2)
	}
	return b
}

func (b *builder) part() Part {
	return Part{Ops: b.ops, StrokeWidth: b.width}
}
