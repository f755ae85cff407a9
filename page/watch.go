package page

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	notation "github.com/gogpu/gg-notation"
)

// DefaultDebounce is used by Watch when debounce is not positive.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads the page at path whenever it changes and passes the fresh
// document to fn. Bursts of events within debounce are coalesced into one
// reload. Load and fn errors are logged and watching continues. Watch
// blocks until ctx is done.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file are handled.
func Watch(ctx context.Context, path string, debounce time.Duration, fn func(*Document) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("page: watch: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("page: watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("page: watch %s: %w", path, err)
	}

	log := notation.Logger()
	log.Info("page: watching", "path", abs, "debounce", debounce)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("page: change detected", "path", abs, "op", event.Op.String())
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("page: watcher error", "err", err)

		case <-timer.C:
			doc, err := Load(abs)
			if err != nil {
				log.Warn("page: reload failed", "path", abs, "err", err)
				continue
			}
			if err := fn(doc); err != nil {
				log.Error("page: reload handler failed", "path", abs, "err", err)
			}
		}
	}
}
