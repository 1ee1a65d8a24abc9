package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"stretchtimer/internal/core/model"
	"stretchtimer/internal/logfields"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads the settings file when it changes on disk.
type Watcher struct {
	store    *SettingsStore
	watcher  *fsnotify.Watcher
	onChange func(model.Settings)
	logger   *slog.Logger
	debounce time.Duration
	reloadCh chan struct{}
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWatcher creates a watcher for the store's file. onChange receives the
// freshly loaded settings on the watcher goroutine. It is not called when the
// file fails to load cleanly.
func NewWatcher(store *SettingsStore, onChange func(model.Settings), logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:    store,
		watcher:  fsWatcher,
		onChange: onChange,
		logger:   logger,
		debounce: defaultDebounce,
		reloadCh: make(chan struct{}, 1),
		stopCh:   make(chan struct{}),
	}, nil
}

// SetDebounce overrides the delay between the last file event and the reload.
func (watcher *Watcher) SetDebounce(delay time.Duration) {
	watcher.debounce = delay
}

// Start watches the directory containing the settings file. Watching the
// directory survives the rename used by Save.
func (watcher *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(watcher.store.Path())
	if err := watcher.watcher.Add(dir); err != nil {
		return fmt.Errorf("watch settings directory %s: %w", dir, err)
	}
	watcher.logger.Info("Watching settings file", logfields.Path(watcher.store.Path()))

	watcher.wg.Add(2)
	go watcher.watchLoop(ctx)
	go watcher.reloadLoop(ctx)
	return nil
}

// Stop ends both loops and releases the fsnotify handle.
func (watcher *Watcher) Stop() error {
	var err error
	watcher.stopOnce.Do(func() {
		close(watcher.stopCh)
		err = watcher.watcher.Close()
		watcher.wg.Wait()
	})
	return err
}

func (watcher *Watcher) watchLoop(ctx context.Context) {
	defer watcher.wg.Done()
	fileName := filepath.Base(watcher.store.Path())

	for {
		select {
		case <-ctx.Done():
			return
		case <-watcher.stopCh:
			return
		case event, ok := <-watcher.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != fileName {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				watcher.logger.Debug("Settings file changed", logfields.Path(event.Name), slog.String("op", event.Op.String()))
				watcher.triggerReload()
			}
		case err, ok := <-watcher.watcher.Errors:
			if !ok {
				return
			}
			watcher.logger.Warn("Settings watcher error", logfields.Error(err))
		}
	}
}

func (watcher *Watcher) reloadLoop(ctx context.Context) {
	defer watcher.wg.Done()
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-watcher.stopCh:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-watcher.reloadCh:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(watcher.debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			watcher.reload()
		}
	}
}

func (watcher *Watcher) triggerReload() {
	select {
	case watcher.reloadCh <- struct{}{}:
	default:
	}
}

func (watcher *Watcher) reload() {
	settings, err := watcher.store.Load()
	if err != nil {
		// Keep the running settings; the file may be mid-edit.
		watcher.logger.Warn("Settings reload skipped", logfields.Path(watcher.store.Path()), logfields.Error(err))
		return
	}
	if watcher.onChange != nil {
		watcher.onChange(settings)
	}
}
