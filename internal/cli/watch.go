package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/colvin/schemer/internal/checksum"
	"github.com/colvin/schemer/internal/files/filesystem"
	"github.com/colvin/schemer/internal/order"
	"github.com/colvin/schemer/pkg/schemer"
)

// watchDebounce batches the event bursts editors produce on save.
const watchDebounce = 250 * time.Millisecond

// runWatch rebuilds the output file whenever the schema tree changes,
// until interrupted. A failing build keeps the watch alive so the next
// save can fix it.
func runWatch(opts *buildOptions, logger schemer.Logger) error {
	if err := runBuild(opts, logger); err != nil {
		logger.Error("build failed: %v", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	addWatchDirs(watcher, opts, logger)

	calc := checksum.New()
	lastDigest := digestFile(calc, opts.output)

	outputPath, err := filepath.Abs(opts.output)
	if err != nil {
		outputPath = opts.output
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	logger.Info("watching %s for changes", opts.path)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// The output file may live inside the watched tree; its own
			// writes must not retrigger a rebuild.
			if abs, err := filepath.Abs(event.Name); err == nil && abs == outputPath {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watchDebounce)
			timerC = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error: %v", err)

		case <-timerC:
			timer = nil
			timerC = nil

			if err := runBuild(opts, logger); err != nil {
				logger.Error("rebuild failed: %v", err)
				continue
			}
			addWatchDirs(watcher, opts, logger)

			digest := digestFile(calc, opts.output)
			if digest == lastDigest {
				logger.Verbose("rebuilt %s, output unchanged", opts.output)
			} else {
				lastDigest = digest
				logger.Info("rebuilt %s (%.12s)", opts.output, digest)
			}

		case <-sigCh:
			logger.Info("stopping watch")
			return nil
		}
	}
}

// addWatchDirs registers every directory contributing to the resolved
// order, plus the root itself. Best-effort: a tree that is currently
// broken still gets its root watched so a later save can recover.
func addWatchDirs(watcher *fsnotify.Watcher, opts *buildOptions, logger schemer.Logger) {
	dirs := map[string]bool{opts.path: true}

	fsProvider := filesystem.NewOSFileSystem()
	resolved, err := order.NewResolver(fsProvider, logger).Resolve(opts.path)
	if err != nil {
		logger.Verbose("watching root only, resolve failed: %v", err)
	} else {
		for _, p := range resolved {
			dirs[filepath.Dir(p)] = true
		}
	}

	for dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			logger.Verbose("cannot watch %s: %v", dir, err)
		}
	}
}

// digestFile returns the digest of the file's current content, or ""
// when it cannot be read.
func digestFile(calc checksum.Calculator, path string) string {
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return calc.Calculate(content)
}
