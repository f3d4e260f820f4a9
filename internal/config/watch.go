package config

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/NobPolish/hackagent/internal/watcher"
)

// Watch starts watching the config file for changes and calls onChange with
// the freshly loaded config on each edit. The dashboard uses this to pick up
// a newly pasted API key without a restart. It returns a close function.
func Watch(path string, onChange func(*Config)) (func(), error) {
	if path == "" {
		path = DefaultPath()
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	path = absPath

	// Debounce so editors doing write+rename do not trigger twice.
	w, err := watcher.New(func(events []watcher.Event) {
		relevant := false
		for _, e := range events {
			if filepath.Clean(e.Path) == filepath.Clean(path) {
				relevant = true
				break
			}
		}
		if !relevant {
			return
		}
		cfg, err := Load(path)
		if err != nil {
			log.Printf("reloading config: %v", err)
			return
		}
		if onChange != nil {
			onChange(cfg)
		}
	}, watcher.WithDebounceDuration(500*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}

	// Watch the directory when the file does not exist yet, so first-time
	// `config set api_key` is picked up too.
	if err := w.Add(path); err != nil {
		if err := w.Add(filepath.Dir(path)); err != nil {
			w.Close()
			return nil, fmt.Errorf("watching config path %s: %w", path, err)
		}
	}

	return func() { w.Close() }, nil
}
