package models

import "github.com/meur/arena/internal/filter"

// FilterConfig describes one filter control a listing page can draw
type FilterConfig struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Field   string   `json:"field"`   // Record field the filter applies to
	Type    string   `json:"type"`    // "select" or "multiselect"
	Options []string `json:"options"` // Values present in the catalog, "all" excluded
}

const (
	FilterSelect      = "select"
	FilterMultiSelect = "multiselect"
)

var dimensionNames = map[filter.Dimension]string{
	filter.Game:    "Game",
	filter.Status:  "Status",
	filter.Country: "Country",
}

// TournamentFilters returns the filter controls for a tournament listing
func TournamentFilters(tournaments []Tournament) []FilterConfig {
	configs := []FilterConfig{
		newFilterConfig(filter.Game, "game", FilterSelect, filter.Options(tournaments, filter.Game)),
	}
	// Status options come from the enum so every state is selectable
	statuses := make([]string, 0, len(AllStatuses))
	for _, s := range AllStatuses {
		statuses = append(statuses, string(s))
	}
	return append(configs, newFilterConfig(filter.Status, "status", FilterSelect, statuses))
}

// PlayerFilters returns the filter controls for a player listing
func PlayerFilters(players []Player) []FilterConfig {
	return []FilterConfig{
		newFilterConfig(filter.Game, "games", FilterMultiSelect, filter.Options(players, filter.Game)),
		newFilterConfig(filter.Country, "country", FilterSelect, filter.Options(players, filter.Country)),
	}
}

// TeamFilters returns the filter controls for a team listing
func TeamFilters(teams []Team) []FilterConfig {
	return []FilterConfig{
		newFilterConfig(filter.Game, "game", FilterSelect, filter.Options(teams, filter.Game)),
		newFilterConfig(filter.Country, "country", FilterSelect, filter.Options(teams, filter.Country)),
	}
}

func newFilterConfig(d filter.Dimension, field, kind string, options []string) FilterConfig {
	return FilterConfig{
		ID:      string(d),
		Name:    dimensionNames[d],
		Field:   field,
		Type:    kind,
		Options: options,
	}
}
