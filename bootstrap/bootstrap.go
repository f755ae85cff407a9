// Package bootstrap draws the page's stave once the page is ready.
//
// With the default configuration the routine is
//
//	canvas := doc.GetElementByID("musicCanvas")
//	renderer := notation.NewRenderer(canvas, notation.BackendCanvas)
//	ctx := renderer.Context()
//	ctx.SetFont("Arial", 10, "").SetBackgroundFillStyle("#eed")
//	stave := notation.NewStave(10, 40, 500)
//	stave.AddClef("treble").AddTimeSignature("4/4")
//	stave.SetContext(ctx).Draw()
//
// Install subscribes it to the document's ready event; Run performs it
// directly.
package bootstrap

import (
	"fmt"

	notation "github.com/gogpu/gg-notation"
	"github.com/gogpu/gg-notation/page"
)

// Document is the part of a host page the bootstrap needs.
type Document interface {
	GetElementByID(id string) (*page.Canvas, error)
}

// Result is what a successful Run drew.
type Result struct {
	Canvas   *page.Canvas
	Renderer *notation.Renderer
	Stave    *notation.Stave
}

// Run draws the configured stave into doc. Each call builds its own
// renderer, context and stave, so calling it again redraws.
func Run(doc Document, cfg Config) (*Result, error) {
	log := notation.Logger()

	canvas, err := doc.GetElementByID(cfg.CanvasID)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	backend, err := notation.ParseBackend(cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	renderer, err := notation.NewRenderer(canvas, backend)
	if err != nil {
		return nil, fmt.Errorf("bootstrap: create renderer: %w", err)
	}

	ctx := renderer.Context()
	ctx.SetFont(cfg.Font.Family, cfg.Font.Size, cfg.Font.Style).SetBackgroundFillStyle(cfg.Background)

	stave := notation.NewStave(cfg.Stave.X, cfg.Stave.Y, cfg.Stave.Width)
	stave.AddClef(cfg.Clef).AddTimeSignature(cfg.TimeSignature)

	if err := stave.SetContext(ctx).Draw(); err != nil {
		return nil, fmt.Errorf("bootstrap: draw stave: %w", err)
	}

	log.Info("bootstrap: stave drawn",
		"canvas", cfg.CanvasID, "backend", backend,
		"clef", cfg.Clef, "time_signature", cfg.TimeSignature)
	return &Result{Canvas: canvas, Renderer: renderer, Stave: stave}, nil
}

// Install runs the bootstrap when doc becomes ready. Its error is returned
// by doc.DispatchReady.
func Install(doc *page.Document, cfg Config) {
	doc.OnReady(func() error {
		_, err := Run(doc, cfg)
		return err
	})
}
