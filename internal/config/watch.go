package config

import (
	"path/filepath"
	"sync"

	"dexview/internal/errors"
	"dexview/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written or replaced
type Watcher struct {
	path      string
	onChange  func(*Config)
	fsWatcher *fsnotify.Watcher
	stopChan  chan struct{}
	done      chan struct{}
	mutex     sync.Mutex
	running   bool
}

// Watch starts watching path and calls onChange with every config that
// loads and validates. Invalid edits are logged and skipped. The parent
// directory is watched because editors usually replace the file.
func Watch(path string, onChange func(*Config)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, errors.Wrapf(err, "failed to add directory %s to watcher", dir)
	}

	w := &Watcher{
		path:      filepath.Clean(path),
		onChange:  onChange,
		fsWatcher: fsWatcher,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		running:   true,
	}
	go w.loop()

	log.LogWithFields(log.F("file", path)).Debug("Watching config file")
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfigFile(w.path)
			if err != nil {
				log.LogWithFields(log.F("file", w.path), log.F("error", err)).Warn("Ignoring config change")
				continue
			}
			w.onChange(cfg)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err)).Error("fsnotify watcher error")

		case <-w.stopChan:
			return
		}
	}
}

// Stop halts the watcher and waits for its goroutine to exit
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if !w.running {
		w.mutex.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	w.mutex.Unlock()

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Error("Error closing fsnotify watcher")
	}
	<-w.done
}
