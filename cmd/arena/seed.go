package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/config"
	"github.com/meur/arena/internal/models"
	"github.com/meur/arena/internal/storage"
)

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import directory catalogs into the configured catalog source",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, func(ctx context.Context, cfg *config.Config) error {
				if cfg.CatalogDriver == config.DriverMemory {
					return fmt.Errorf("seed needs CATALOG_DRIVER=sqlite or postgres")
				}

				bundle := catalog.Default()
				if file != "" {
					var err error
					if bundle, err = readBundle(file); err != nil {
						return err
					}
				}

				// Validate before touching the database
				set, err := catalog.NewSet(bundle)
				if err != nil {
					return fmt.Errorf("invalid catalog: %w", err)
				}

				src, err := storage.Open(ctx, cfg)
				if err != nil {
					return fmt.Errorf("open catalog source: %w", err)
				}
				defer src.Close()

				if err := src.Import(ctx, bundle); err != nil {
					return fmt.Errorf("import: %w", err)
				}

				logger.Info("Seeding complete",
					"driver", cfg.CatalogDriver,
					"tournaments", set.Tournaments.Len(),
					"players", set.Players.Len(),
					"teams", set.Teams.Len())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "JSON catalog file (default: built-in placeholder content)")
	return cmd
}

func readBundle(path string) (models.Bundle, error) {
	var bundle models.Bundle

	data, err := os.ReadFile(path)
	if err != nil {
		return bundle, err
	}
	if err := json.Unmarshal(data, &bundle); err != nil {
		return bundle, fmt.Errorf("parse %s: %w", path, err)
	}

	catalog.AssignIDs(&bundle)
	return bundle, nil
}
