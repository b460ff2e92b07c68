// Command arena is the Arena directory operator CLI.
//
// Usage:
//
//	arena seed
//	arena seed --file seeds/catalog.json
//	arena list tournaments --search cup
//	arena list players --game "COD Warzone" --country Ghana
//	arena browse
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/config"
	"github.com/meur/arena/internal/console"
	"github.com/meur/arena/internal/storage"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "arena",
		Short:         "Arena directory CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(seedCmd())
	root.AddCommand(listCmd())
	root.AddCommand(browseCmd())

	if err := root.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// browse command
// --------------------------------------------------------------------------

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the directory interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCatalogs(cmd, func(ctx context.Context, cfg *config.Config, set *catalog.Set) error {
				session := console.New(set, cmd.OutOrStdout(), cfg.SuggestionLimit)
				return session.Run(cmd.InOrStdin())
			})
		},
	}
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// withConfig loads configuration and a cancellable context for a command.
// Logs go to the command's stderr so they never mix with printed tables.
func withConfig(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = cfg.NewLogger(cmd.ErrOrStderr())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	return fn(ctx, cfg)
}

// withCatalogs loads the configured catalog source into memory
func withCatalogs(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, set *catalog.Set) error) error {
	return withConfig(cmd, func(ctx context.Context, cfg *config.Config) error {
		src, err := storage.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("open catalog source: %w", err)
		}
		defer src.Close()

		set, err := storage.Load(ctx, src)
		if err != nil {
			return err
		}
		logger.Debug("catalogs loaded",
			"driver", cfg.CatalogDriver,
			"tournaments", set.Tournaments.Len(),
			"players", set.Players.Len(),
			"teams", set.Teams.Len())
		return fn(ctx, cfg, set)
	})
}
