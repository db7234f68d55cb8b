package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/steveyegge/wbs/internal/config"
)

// logWatcher monitors the action log file for changes using filesystem
// events, falling back to polling when fsnotify is unavailable on the
// filesystem.
type logWatcher struct {
	watcher      *fsnotify.Watcher
	path         string
	pollingMode  bool
	pollInterval time.Duration
	events       chan struct{}
	cancel       context.CancelFunc
	wg           sync.WaitGroup

	mu          sync.Mutex
	lastModTime time.Time
}

func newLogWatcher(path string, pollInterval time.Duration) *logWatcher {
	lw := &logWatcher{
		path:         path,
		pollInterval: pollInterval,
		events:       make(chan struct{}, 1),
	}
	if stat, err := os.Stat(path); err == nil {
		lw.lastModTime = stat.ModTime()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		lw.pollingMode = true
		return lw
	}
	if err := watcher.Add(path); err != nil {
		_ = watcher.Close()
		lw.pollingMode = true
		return lw
	}
	lw.watcher = watcher
	return lw
}

func (lw *logWatcher) Events() <-chan struct{} {
	return lw.events
}

func (lw *logWatcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	lw.cancel = cancel
	if lw.pollingMode {
		lw.startPolling(ctx)
		return
	}
	lw.startFSWatch(ctx)
}

func (lw *logWatcher) startFSWatch(ctx context.Context) {
	lw.wg.Add(1)
	go func() {
		defer lw.wg.Done()

		// Debounce: don't send more than one event per 50ms.
		var lastEvent time.Time
		debounceWindow := 50 * time.Millisecond

		for {
			select {
			case event, ok := <-lw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
					continue
				}
				now := time.Now()
				if now.Sub(lastEvent) < debounceWindow {
					continue
				}
				lastEvent = now
				select {
				case lw.events <- struct{}{}:
				default:
				}
			case _, ok := <-lw.watcher.Errors:
				if !ok {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (lw *logWatcher) startPolling(ctx context.Context) {
	lw.wg.Add(1)
	go func() {
		defer lw.wg.Done()
		ticker := time.NewTicker(lw.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if lw.changed() {
					select {
					case lw.events <- struct{}{}:
					default:
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (lw *logWatcher) changed() bool {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	stat, err := os.Stat(lw.path)
	if err != nil {
		return false
	}
	if !stat.ModTime().Equal(lw.lastModTime) {
		lw.lastModTime = stat.ModTime()
		return true
	}
	return false
}

func (lw *logWatcher) Close() error {
	if lw.cancel != nil {
		lw.cancel()
	}
	lw.wg.Wait()
	close(lw.events)
	if lw.watcher != nil {
		return lw.watcher.Close()
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the goal tree whenever the action log changes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		interval, _ := cmd.Flags().GetDuration("poll-interval")

		render := func() {
			store, err := openStore(ctx)
			if err != nil {
				// Another process may hold the lock; try again next event.
				fmt.Fprintf(os.Stderr, "wbs: %v\n", err)
				return
			}
			defer store.Close()
			doc, err := loadDocument(ctx, store)
			if err != nil {
				fmt.Fprintf(os.Stderr, "wbs: %v\n", err)
				return
			}
			fmt.Print("\033[H\033[2J")
			renderTree(doc, "", false)
		}

		lw := newLogWatcher(config.DatabasePath(), interval)
		lw.Start(ctx)
		defer lw.Close()

		if lw.pollingMode {
			fmt.Fprintf(os.Stderr, "wbs: file events unavailable, polling every %s\n", interval)
		}

		render()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		for {
			select {
			case <-lw.Events():
				render()
			case <-sigCh:
				return
			}
		}
	},
}

func init() {
	watchCmd.Flags().Duration("poll-interval", 2*time.Second, "Polling interval when file events are unavailable")
	rootCmd.AddCommand(watchCmd)
}
