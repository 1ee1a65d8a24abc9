package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	stretchapp "stretchtimer/internal/app"
	"stretchtimer/internal/core/catalog"
	"stretchtimer/internal/core/model"
	"stretchtimer/internal/core/pairing"
	"stretchtimer/internal/core/timekeeper"
	"stretchtimer/internal/logfields"
	"stretchtimer/internal/platform"
	"stretchtimer/internal/storage"
	"stretchtimer/internal/ui/dispatch"
	apptheme "stretchtimer/internal/ui/theme"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"
	"github.com/jonboulle/clockwork"
)

const (
	appName = "StretchTimer"
	appID   = "com.stretchtimer.app"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Stretch timer failed", logfields.Error(err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			logger.Info("Another instance is already running")
			return nil
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()

	settingsPath, err := platform.SettingsPath(appName, storage.SettingsFileName)
	if err != nil {
		return fmt.Errorf("resolve settings path: %w", err)
	}
	store := storage.NewSettingsStore(settingsPath)
	settings, err := store.Load()
	if err != nil {
		logger.Warn("Using defaults for unreadable settings", logfields.Path(settingsPath), logfields.Error(err))
	}

	exercises, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("load exercise catalog: %w", err)
	}

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())
	fyneApp.Settings().SetTheme(apptheme.New(settings.Theme))

	clock := clockwork.NewRealClock()
	keeper := timekeeper.New(settings.TimeKeeperConfig(), timekeeper.Config{
		Clock:  clock,
		Logger: logger,
	})
	appCtx := stretchapp.New(settings, stretchapp.Deps{
		Store:      store,
		Keeper:     keeper,
		Policy:     pairing.New(exercises, nil),
		Notifier:   platform.NewNotifier(fyneApp),
		Sound:      platform.NewSoundPlayer(),
		Dispatcher: dispatch.Fyne{},
		Clock:      clock,
		Logger:     logger,
	})

	ui := newShell(fyneApp, appCtx, clock, logger)
	appCtx.SetPresenter(ui)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watcher, err := storage.NewWatcher(store, func(loaded model.Settings) {
		appCtx.ReloadSettings(loaded)
	}, logger); err != nil {
		logger.Warn("Settings hot reload unavailable", logfields.Error(err))
	} else if err := watcher.Start(ctx); err != nil {
		logger.Warn("Settings hot reload unavailable", logfields.Error(err))
	} else {
		defer func() {
			_ = watcher.Stop()
		}()
	}

	logger.Info("Stretch timer starting", logfields.Path(settingsPath), logfields.Interval(settings.Interval.Min))
	appCtx.Start()
	ui.show()
	fyneApp.Run()

	appCtx.SetPresenter(nil)
	if err := appCtx.Close(); err != nil {
		logger.Error("Failed to save settings on exit", logfields.Error(err))
	}
	return nil
}

func logLevel() slog.Level {
	if os.Getenv("STRETCH_TIMER_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
