package glyph

import "math"

// Treble is the G clef. Its spiral is centred on the second line from the
// bottom (y=3).
var Treble = Glyph{
	Name:  "gClef",
	Width: 2.1,
	Parts: []Part{
		stroke(0.16).
			M(1.05, 3.15).
			C(0.75, 3.35, 0.55, 2.75, 1.0, 2.55).
			C(1.6, 2.4, 1.95, 3.2, 1.45, 3.75).
			C(1.0, 4.2, 0.05, 4.0, 0.1, 3.1).
			C(0.15, 2.2, 1.4, 1.3, 1.7, 0.4).
			C(1.95, -0.4, 1.7, -1.4, 1.35, -1.4).
			C(0.9, -1.4, 0.75, -0.2, 0.95, 1.0).
			L(1.35, 4.9).
			C(1.45, 5.6, 0.9, 5.85, 0.55, 5.6).
			part(),
		fill().circle(0.62, 5.35, 0.25).part(),
	},
}

// Bass is the F clef. Its head and dots surround the second line from the
// top (y=1).
var Bass = Glyph{
	Name:  "fClef",
	Width: 2.7,
	Parts: []Part{
		fill().circle(0.35, 1.0, 0.3).part(),
		stroke(0.2).
			M(0.15, 1.0).
			C(0.15, 0.05, 1.4, -0.2, 1.95, 0.6).
			C(2.4, 1.4, 1.9, 2.7, 0.2, 3.5).
			part(),
		fill().circle(2.45, 0.55, 0.17).circle(2.45, 1.45, 0.17).part(),
	},
}

// Alto is the C clef centred on the middle line.
var Alto = cClef("cClef", 2)

// Tenor is the C clef centred on the second line from the top.
var Tenor = cClef("cClef", 1)

// cClef builds a C clef whose point sits on line y=center.
func cClef(name string, center float64) Glyph {
	top, bottom := center-2, center+2
	lobe := func(dir float64) Part {
		y := func(dy float64) float64 { return center + dir*dy }
		return stroke(0.22).
			M(0.8, y(0)).
			L(1.25, y(0.45)).
			C(1.35, y(1.3), 1.55, y(1.85), 2.05, y(1.85)).
			C(2.6, y(1.85), 2.7, y(0.9), 2.15, y(0.75)).
			part()
	}
	return Glyph{
		Name:  name,
		Width: 2.85,
		Parts: []Part{
			fill().rect(0, top, 0.45, bottom).rect(0.65, top, 0.8, bottom).part(),
			lobe(-1),
			lobe(1),
		},
	}
}

// Percussion is the neutral clef: two thick bars across the middle lines.
var Percussion = Glyph{
	Name:  "unpitchedPercussionClef1",
	Width: 1.75,
	Parts: []Part{
		fill().rect(0.3, 1, 0.65, 3).rect(1.1, 1, 1.45, 3).part(),
	},
}

// CommonTime is the "C" time signature symbol.
var CommonTime = Glyph{
	Name:  "timeSigCommon",
	Width: 2.0,
	Parts: []Part{
		stroke(0.3).arc(1.1, 2.0, 0.85, math.Pi/3, 5*math.Pi/3).part(),
	},
}

// CutTime is the "C|" (alla breve) time signature symbol.
var CutTime = Glyph{
	Name:  "timeSigCutCommon",
	Width: 2.0,
	Parts: []Part{
		stroke(0.3).arc(1.1, 2.0, 0.85, math.Pi/3, 5*math.Pi/3).part(),
		stroke(0.18).M(1.1, -0.5).L(1.1, 4.5).part(),
	},
}
