//go:build js && wasm

// Command stave-wasm runs the stave bootstrap in a browser. It waits for
// DOMContentLoaded, draws into an in-memory canvas sized like the page's
// musicCanvas element and copies the pixels onto it with putImageData.
package main

import (
	"fmt"
	"syscall/js"

	notation "github.com/gogpu/gg-notation"
	"github.com/gogpu/gg-notation/bootstrap"
	"github.com/gogpu/gg-notation/page"
)

func main() {
	document := js.Global().Get("document")

	var onReady js.Func
	onReady = js.FuncOf(func(js.Value, []js.Value) any {
		if err := draw(document, bootstrap.DefaultConfig()); err != nil {
			js.Global().Get("console").Call("error", err.Error())
		}
		onReady.Release()
		return nil
	})

	if document.Get("readyState").String() == "loading" {
		document.Call("addEventListener", "DOMContentLoaded", onReady)
	} else {
		onReady.Invoke()
	}

	select {}
}

// draw mirrors the DOM canvas into a page.Document, runs the bootstrap on
// ready and blits the result back.
func draw(document js.Value, cfg bootstrap.Config) error {
	el := document.Call("getElementById", cfg.CanvasID)
	if el.IsNull() {
		return fmt.Errorf("stave-wasm: %w", &page.ElementNotFoundError{ID: cfg.CanvasID})
	}
	w, h := el.Get("width").Int(), el.Get("height").Int()

	doc := page.NewDocument()
	canvas, err := doc.AddCanvas(cfg.CanvasID, w, h)
	if err != nil {
		return err
	}
	bootstrap.Install(doc, cfg)
	if err := doc.DispatchReady(); err != nil {
		return err
	}

	pm := canvas.Pixmap()
	pixels := js.Global().Get("Uint8ClampedArray").New(len(pm.Data()))
	js.CopyBytesToJS(pixels, pm.Data())
	img := js.Global().Get("ImageData").New(pixels, w, h)
	el.Call("getContext", "2d").Call("putImageData", img, 0, 0)

	notation.Logger().Info("stave-wasm: canvas updated", "width", w, "height", h)
	return nil
}
