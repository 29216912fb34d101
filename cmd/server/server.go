// cmd/server/server.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/baddersbot/portal/internal/api"
	"github.com/baddersbot/portal/internal/config"
	"github.com/baddersbot/portal/internal/db"
	"github.com/baddersbot/portal/internal/fixtures"
	"github.com/baddersbot/portal/internal/templates"
)

// newServer assembles the portal: fixture store (verified up front), sqlite
// database seeded from the fixture roster, and the route handler.
func newServer(cfg *config.Config) (*http.Server, error) {
	store, err := loadFixtureStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := store.Verify(); err != nil {
		return nil, fmt.Errorf("invalid fixture document: %w", err)
	}

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	roster, err := store.PlayerDirectory()
	if err != nil {
		return nil, err
	}
	if err := database.SeedPlayers(context.Background(), roster); err != nil {
		return nil, fmt.Errorf("seeding players: %w", err)
	}

	handler := api.NewHandler(database, store, templates.New())

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func loadFixtureStore(cfg *config.Config) (*fixtures.Store, error) {
	if cfg.Fixtures.Path != "" {
		return fixtures.Load(cfg.Fixtures.Path)
	}
	return fixtures.LoadEmbedded()
}
