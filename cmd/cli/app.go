package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/store"
	"github.com/ManuelHouben/blender-camera-sensor-database/pkg/updater"
)

// App bundles the stores and services the commands operate on.
type App struct {
	Config  *Config
	Store   *store.DatasetStore
	Prefs   *store.PreferencesStore
	Updater *updater.Updater
}

// NewApp wires the stores and the updater from the configuration.
func NewApp(cfg *Config) *App {
	datasets := store.NewDatasetStore(cfg.DataDir)
	prefs := store.NewPreferencesStore(cfg.DataDir)

	client := updater.NewClient(
		cfg.SensorsURL,
		cfg.VersionURL,
		updater.WithTimeout(time.Duration(cfg.TimeoutSec)*time.Second),
	)

	return &App{
		Config: cfg,
		Store:  datasets,
		Prefs:  prefs,
		Updater: updater.New(client, datasets, prefs,
			updater.WithOnlineGate(cfg.IsOnline),
		),
	}
}

func appFrom(cmd *cobra.Command) *App {
	return cmd.Context().Value("app").(*App)
}
