// Package notation draws music notation staves onto gg surfaces.
//
// # Overview
//
// notation is a small engraving layer on top of github.com/gogpu/gg. A
// Renderer binds a host-owned Surface (usually a page canvas element) to a
// backend and exposes a RenderContext with an HTML-canvas-like API. Staves
// are value objects configured through chained calls and drawn into a
// context.
//
// # Quick Start
//
//	r, err := notation.NewRenderer(canvas, notation.BackendCanvas)
//	if err != nil {
//	    return err
//	}
//	ctx := r.Context()
//	ctx.SetFont("Arial", 10, "").SetBackgroundFillStyle("#eed")
//
//	stave := notation.NewStave(10, 40, 500)
//	stave.AddClef("treble").AddTimeSignature("4/4")
//	if err := stave.SetContext(ctx).Draw(); err != nil {
//	    return err
//	}
//
// # Backends
//
// BackendCanvas rasterizes into the surface's gg.Pixmap with the gg
// software renderer. BackendSVG records commands with gg's recording
// package and serializes them through the svg sub-package.
//
// # Coordinate System
//
// Pixels, origin at the top-left, y growing downwards. A stave at (x, y)
// places its top line spaceAbove staff spaces below y (40 px with the
// defaults).
//
// # Errors
//
// Chained calls cannot return errors. Contexts keep the first error and
// report it from Err; staves keep configuration errors and report them
// from Draw.
package notation

// Version is the current version of the module.
const Version = "0.3.0"
