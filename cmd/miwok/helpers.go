package main

import (
	"context"
	"fmt"

	"github.com/at-ishikawa/miwok/internal/audio"
	"github.com/at-ishikawa/miwok/internal/config"
	"github.com/at-ishikawa/miwok/internal/database"
	"github.com/at-ishikawa/miwok/internal/history"
	"github.com/at-ishikawa/miwok/internal/playback"
	"github.com/at-ishikawa/miwok/internal/vocabulary"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// loadCategory loads the config and the catalog, and returns the category with the given ID.
func loadCategory(id string) (*config.Config, *vocabulary.Catalog, vocabulary.Category, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, vocabulary.Category{}, err
	}
	catalog, err := vocabulary.LoadCatalog(cfg.Catalog.File)
	if err != nil {
		return nil, nil, vocabulary.Category{}, fmt.Errorf("vocabulary.LoadCatalog() > %w", err)
	}
	category, err := catalog.Category(id)
	if err != nil {
		return nil, nil, vocabulary.Category{}, err
	}
	return cfg, catalog, category, nil
}

func rendererOptions() []vocabulary.RendererOption {
	if noColor {
		return []vocabulary.RendererOption{vocabulary.WithoutColor()}
	}
	return nil
}

func openHistoryRepository(cfg *config.Config) (history.Repository, func() error, error) {
	switch cfg.History.Backend {
	case config.HistoryBackendDatabase:
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("database.Open() > %w", err)
		}
		return history.NewDBRepository(db), db.Close, nil
	default:
		return history.NewYAMLRepository(cfg.History.File), func() error { return nil }, nil
	}
}

// playbackRuntime is a playback manager wired to the audio device, the external player
// and the play history of one category.
type playbackRuntime struct {
	manager         *playback.Manager
	arbiter         *audio.Arbiter
	recorder        *history.Recorder
	closeRepository func() error
}

func newPlaybackRuntime(ctx context.Context, cfg *config.Config, category string, observers ...playback.Observer) (*playbackRuntime, error) {
	repository, closeRepository, err := openHistoryRepository(cfg)
	if err != nil {
		return nil, err
	}

	var arbiterOptions []audio.ArbiterOption
	if cfg.Focus.DelayedGrants {
		arbiterOptions = append(arbiterOptions, audio.WithDelayedGrants())
	}
	arbiter := audio.NewArbiter(arbiterOptions...)

	recorder := history.NewRecorder(repository, category, cfg.History.BufferSize)
	recorder.Start(ctx)

	options := []playback.Option{playback.WithObserver(recorder)}
	for _, observer := range observers {
		options = append(options, playback.WithObserver(observer))
	}
	loader := audio.NewProcessLoader(cfg.Clips.Directory, cfg.Clips.Extensions, cfg.Player.Command)

	return &playbackRuntime{
		manager:         playback.NewManager(arbiter, loader, options...),
		arbiter:         arbiter,
		recorder:        recorder,
		closeRepository: closeRepository,
	}, nil
}

// Close tears the session down and waits until its play logs are written.
func (r *playbackRuntime) Close() error {
	r.manager.Teardown()
	r.recorder.Close()
	r.arbiter.Close()
	if err := r.closeRepository(); err != nil {
		return fmt.Errorf("closeRepository() > %w", err)
	}
	return nil
}
