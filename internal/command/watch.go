// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/lingodiff/lingodiff/internal/log"
)

// watchDebounce is how long the files must stay quiet before a re-run.
var watchDebounce = 200 * time.Millisecond

// clearScreen homes the cursor and clears a terminal.
const clearScreen = "\033[H\033[2J"

// watchFiles runs run once and again whenever one of names is written, until
// ctx is cancelled or the process is interrupted. The parent directories are
// watched so that editors replacing a file on save are still seen. Errors
// from run are reported and watching continues.
func watchFiles(ctx context.Context, names []string, w io.Writer, run func() error) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(names))
	dirs := make(map[string]bool, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, "s3://") {
			return fmt.Errorf("--watch only works with local files: %s", name)
		}
		abs, err := filepath.Abs(name)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		log.Debugf("watching %s", dir)
	}

	tty := isTerminal(w)
	render := func() {
		if tty {
			fmt.Fprint(w, clearScreen)
		}
		if err := run(); err != nil {
			log.Errorf("watch: %v", err)
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	render()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !targets[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			log.Tracef("watch event: %s", event)
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watch: %v", err)

		case <-fire:
			fire = nil
			render()
		}
	}
}
