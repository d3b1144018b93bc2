// Package watch re-parses an ARFF file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leapstack-labs/arffkit/internal/source"
	"github.com/leapstack-labs/arffkit/pkg/arff"
)

// DefaultDebounce is how long Watch waits after the last change event
// before re-parsing.
const DefaultDebounce = 100 * time.Millisecond

// Options configures Watch.
type Options struct {
	Parse    arff.Options
	Encoding string
	// Debounce defaults to DefaultDebounce when zero.
	Debounce time.Duration
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// Handler receives the result of every parse. Exactly one of doc and err
// is non-nil.
type Handler func(doc *arff.Document, err error)

// Watch parses path once, then again after every write to it, until ctx is
// cancelled. The containing directory is watched so that editors which
// replace the file on save are handled. fn is never called concurrently.
func Watch(ctx context.Context, path string, opts Options, fn Handler) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	parse := func() {
		fn(source.ParseFile(path, opts.Encoding, opts.Parse))
	}
	parse()

	// A stopped timer whose channel is drained, reset on every event.
	timer := time.NewTimer(time.Hour)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			logger.Debug("change detected", "file", event.Name, "op", event.Op.String())
			timer.Reset(debounce)

		case <-timer.C:
			parse()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
