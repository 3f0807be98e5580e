package config

import (
	"errors"
	"os"

	"github.com/knadh/koanf/providers/file"
)

// ErrNoConfigFile is returned by Watch when there is no file to watch.
var ErrNoConfigFile = errors.New("no config file")

// ActivePath returns the file with the highest priority among extra and the
// default locations, or "" if none exists.
func ActivePath(extra string) string {
	if extra != "" {
		return expandPath(extra)
	}
	active := ""
	for _, path := range getConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			active = path
		}
	}
	return active
}

// Watcher reloads the configuration when the active config file changes.
type Watcher struct {
	provider *file.File
}

// Watch starts watching the active config file. fn receives the reloaded
// configuration, or the error that prevented loading it. fn runs on the
// watcher goroutine.
func Watch(extra string, fn func(*Config, error)) (*Watcher, error) {
	path := ActivePath(extra)
	if path == "" {
		return nil, ErrNoConfigFile
	}

	p := file.Provider(path)
	err := p.Watch(func(_ interface{}, err error) {
		if err != nil {
			fn(nil, err)
			return
		}
		fn(Load(extra))
	})
	if err != nil {
		return nil, err
	}
	return &Watcher{provider: p}, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.provider.Unwatch()
}
