package services

import (
	"fmt"

	"github.com/NagamManaswini/CALORIE-COUNTER/config"
	"github.com/NagamManaswini/CALORIE-COUNTER/storage"
)

// App wires the stores and services over one data directory. Store handles
// are passed explicitly; there is no ambient shared state.
type App struct {
	Config   config.Config
	Profiles *ProfileService
	Logs     *LogService
	Stats    *StatsService
	Food     *FoodService
}

// NewApp builds the full service graph from a loaded configuration.
func NewApp(cfg config.Config) (*App, error) {
	store, err := storage.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	profiles, err := NewProfileService(store)
	if err != nil {
		return nil, err
	}
	logs, err := NewLogService(store)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:   cfg,
		Profiles: profiles,
		Logs:     logs,
		Stats:    NewStatsService(logs, profiles),
		Food:     NewFoodService(NewGeminiService(cfg)),
	}, nil
}
