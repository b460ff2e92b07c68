package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/config"
	"github.com/meur/arena/internal/console"
	"github.com/meur/arena/internal/filter"
	"github.com/meur/arena/internal/models"
)

// --------------------------------------------------------------------------
// list command
// --------------------------------------------------------------------------

func listCmd() *cobra.Command {
	var search, game, status, country string
	cmd := &cobra.Command{
		Use:       "list tournaments|players|teams",
		Short:     "Print the records matching the given filters",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"tournaments", "players", "teams"},
		RunE: func(cmd *cobra.Command, args []string) error {
			statusOpt, err := models.StatusOption(status)
			if err != nil {
				return err
			}
			state := filter.State{
				Search:  search,
				Game:    filter.ParseOption(game),
				Status:  statusOpt,
				Country: filter.ParseOption(country),
			}

			return withCatalogs(cmd, func(ctx context.Context, cfg *config.Config, set *catalog.Set) error {
				out := cmd.OutOrStdout()
				switch strings.ToLower(args[0]) {
				case "tournaments":
					items, err := set.Tournaments.Project(state)
					if err != nil {
						return err
					}
					console.PrintTournaments(out, items)
					printSuggestions(cmd, len(items), set.Tournaments.Suggest(search, cfg.SuggestionLimit))
				case "players":
					items, err := set.Players.Project(state)
					if err != nil {
						return err
					}
					console.PrintPlayers(out, items)
					printSuggestions(cmd, len(items), set.Players.Suggest(search, cfg.SuggestionLimit))
				case "teams":
					items, err := set.Teams.Project(state)
					if err != nil {
						return err
					}
					console.PrintTeams(out, items)
					printSuggestions(cmd, len(items), set.Teams.Suggest(search, cfg.SuggestionLimit))
				default:
					return fmt.Errorf("unknown catalog %q", args[0])
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name search")
	cmd.Flags().StringVar(&game, "game", filter.AllValue, "Game filter")
	cmd.Flags().StringVar(&status, "status", filter.AllValue, "Status filter (tournaments only)")
	cmd.Flags().StringVar(&country, "country", filter.AllValue, "Country filter (players and teams only)")
	return cmd
}

func printSuggestions(cmd *cobra.Command, shown int, suggestions []string) {
	if shown > 0 || len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Did you mean: %s?\n", strings.Join(suggestions, ", "))
}
