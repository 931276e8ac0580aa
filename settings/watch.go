package settings

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the store whenever its config file is written or replaced,
// until ctx is done. onReload, if non-nil, is called on the watcher goroutine
// after every attempt with the reload error (nil on success).
//
// The parent directory is watched rather than the file so that editors that
// save by rename keep triggering reloads.
func (s *Store) Watch(ctx context.Context, onReload func(error)) error {
	if s.path == "" {
		return ErrNoFile
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch settings: %w", err)
	}
	target := filepath.Clean(s.path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch settings %s: %w", s.path, err)
	}

	report := func(err error) {
		if onReload != nil {
			onReload(err)
		}
	}
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				report(s.Reload())
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				report(fmt.Errorf("watch settings: %w", err))
			}
		}
	}()
	return nil
}
