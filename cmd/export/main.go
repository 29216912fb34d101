// cmd/export/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/baddersbot/portal/internal/api"
	"github.com/baddersbot/portal/internal/config"
	"github.com/baddersbot/portal/internal/db"
	"github.com/baddersbot/portal/internal/export"
	"github.com/baddersbot/portal/internal/fixtures"
	"github.com/baddersbot/portal/internal/templates"
)

func main() {
	output := flag.String("output", "dist", "output directory for static files")
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := run(*configPath, *output); err != nil {
		log.Fatal().Err(err).Msg("Static site build failed")
	}
	log.Info().Str("output", *output).Msg("Static site built")
}

func run(configPath, outputDir string) error {
	cfg := config.Default()
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var store *fixtures.Store
	var err error
	if cfg.Fixtures.Path != "" {
		store, err = fixtures.Load(cfg.Fixtures.Path)
	} else {
		store, err = fixtures.LoadEmbedded()
	}
	if err != nil {
		return err
	}
	if err := store.Verify(); err != nil {
		return fmt.Errorf("invalid fixture document: %w", err)
	}

	database, err := db.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	roster, err := store.PlayerDirectory()
	if err != nil {
		return err
	}
	if err := database.SeedPlayers(context.Background(), roster); err != nil {
		return fmt.Errorf("seeding players: %w", err)
	}

	handler := api.NewHandler(database, store, templates.New())
	return export.BuildSite(handler, outputDir)
}
