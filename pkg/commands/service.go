package commands

import (
	"tableflip.dev/planner/pkg/app"
	"tableflip.dev/planner/pkg/store"
	"tableflip.dev/planner/pkg/tennis"
)

// loadService opens the configured store.
func loadService() (*app.Service, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return &app.Service{Persistence: p}, cfg, nil
}

func tennisFetcher(cfg store.Config) *tennis.Fetcher {
	return &tennis.Fetcher{APIKey: cfg.APIKey(), Model: cfg.Model()}
}
