package page

import (
	"errors"
	"sync"

	notation "github.com/gogpu/gg-notation"
)

// readyEvent is a one-shot event in the style of DOMContentLoaded.
type readyEvent struct {
	mu        sync.Mutex
	fired     bool
	listeners []func() error
}

// OnReady registers fn to run when the document becomes ready. Listeners
// run once, in registration order. A listener registered after the event
// has fired never runs.
func (d *Document) OnReady(fn func() error) {
	if fn == nil {
		return
	}
	d.ready.mu.Lock()
	defer d.ready.mu.Unlock()
	if d.ready.fired {
		notation.Logger().Debug("page: ready listener added after ready, ignored")
		return
	}
	d.ready.listeners = append(d.ready.listeners, fn)
}

// DispatchReady fires the ready event. Every listener runs even if an
// earlier one fails; their errors are joined. Later calls do nothing.
func (d *Document) DispatchReady() error {
	d.ready.mu.Lock()
	if d.ready.fired {
		d.ready.mu.Unlock()
		return nil
	}
	d.ready.fired = true
	listeners := d.ready.listeners
	d.ready.listeners = nil
	d.ready.mu.Unlock()

	notation.Logger().Info("page: ready", "listeners", len(listeners))

	var errs []error
	for _, fn := range listeners {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ready reports whether the ready event has fired.
func (d *Document) Ready() bool {
	d.ready.mu.Lock()
	defer d.ready.mu.Unlock()
	return d.ready.fired
}
