package core

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces editor save bursts into one rerun.
const watchDebounce = 1 * time.Second

// Watch watches featsweep.yml and the package manifest, invoking
// callback after each debounced change. Blocks until ctx is canceled or
// the watcher dies. The parent directories are watched too so
// delete-and-recreate saves (how most editors write files) keep firing.
func (m *Manager) Watch(ctx context.Context, manifestPath string, callback func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := map[string]bool{
		m.configStore.Path(): true,
		manifestPath:         true,
	}

	dirs := map[string]bool{}
	for path := range watched {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	fmt.Printf("Watching %s and %s for changes...\n", m.configStore.Path(), manifestPath)
	fmt.Println("Press Ctrl+C to stop")

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !watched[filepath.Clean(event.Name)] {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				changed := event.Name
				debounceTimer = time.AfterFunc(watchDebounce, func() {
					fmt.Printf("\nDetected change to %s\n", filepath.Base(changed))

					if _, err := os.Stat(changed); err != nil {
						m.ui.ShowWarning("File Not Found", "Watched file was deleted or is inaccessible")
						return
					}

					if err := callback(); err != nil {
						m.ui.ShowError("Sweep Failed", err.Error())
					} else {
						m.ui.ShowSuccess("Sweep completed")
					}

					fmt.Println("\nStill watching for changes...")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v\n", err)
		}
	}
}
