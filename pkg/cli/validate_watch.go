package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scaffoldnext/preflight/pkg/console"
	"github.com/scaffoldnext/preflight/pkg/fileutil"
	"github.com/scaffoldnext/preflight/pkg/logger"
	"github.com/scaffoldnext/preflight/pkg/validator"
)

var watchLog = logger.New("cli:validate_watch")

// watchDebounce coalesces bursts of filesystem events (editors often
// write a file several times in quick succession) into one revalidation.
const watchDebounce = 200 * time.Millisecond

// watchAndValidate validates once, then revalidates whenever a JSON file
// in the configuration directory changes. Individual failing runs are
// reported but do not terminate the watch; only context cancellation or a
// watcher error ends it.
func watchAndValidate(ctx context.Context, opts validator.Options, jsonOutput bool) error {
	if !fileutil.DirExists(opts.Dir) {
		return fmt.Errorf("cannot watch %s: directory does not exist", opts.Dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(opts.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", opts.Dir, err)
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", opts.Dir)))

	runOnce := func() {
		if err := RunValidation(ctx, opts, jsonOutput); err != nil {
			watchLog.Printf("Validation run failed: %v", err)
		}
	}
	runOnce()

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			watchLog.Printf("Change detected: %s (%s)", event.Name, event.Op)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(watchDebounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			runOnce()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch error: %w", err)
		}
	}
}
