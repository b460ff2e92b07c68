// Package storage loads directory catalogs from a catalog source.
//
// Sources are read once at startup; Import exists for the seed command.
package storage

import (
	"context"
	"fmt"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/config"
	"github.com/meur/arena/internal/models"
)

// Source is a catalog source. Every loader returns records in the order
// they were imported.
type Source interface {
	Tournaments(ctx context.Context) ([]models.Tournament, error)
	Players(ctx context.Context) ([]models.Player, error)
	Teams(ctx context.Context) ([]models.Team, error)
	Import(ctx context.Context, b models.Bundle) error
	Close() error
}

// Open returns the source selected by cfg.CatalogDriver
func Open(ctx context.Context, cfg *config.Config) (Source, error) {
	switch cfg.CatalogDriver {
	case config.DriverSQLite:
		return NewSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return NewPostgres(ctx, cfg.DatabaseURL)
	case config.DriverMemory:
		return NewMemory(catalog.Default()), nil
	}
	return nil, fmt.Errorf("unknown catalog driver %q", cfg.CatalogDriver)
}

// Load reads every catalog from src into an immutable set
func Load(ctx context.Context, src Source) (*catalog.Set, error) {
	var b models.Bundle
	var err error

	if b.Tournaments, err = src.Tournaments(ctx); err != nil {
		return nil, fmt.Errorf("load tournaments: %w", err)
	}
	if b.Players, err = src.Players(ctx); err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	if b.Teams, err = src.Teams(ctx); err != nil {
		return nil, fmt.Errorf("load teams: %w", err)
	}

	return catalog.NewSet(b)
}
