package page

import (
	"fmt"
	"strings"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/filter"
	"github.com/meur/arena/internal/models"
)

// Mode selects which catalog the directory shows
type Mode int

const (
	ModePlayers Mode = iota
	ModeTeams
)

// String returns the view name used by surfaces
func (m Mode) String() string {
	if m == ModeTeams {
		return "teams"
	}
	return "players"
}

// ParseMode accepts "players" or "teams"; empty input means players
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "players":
		return ModePlayers, nil
	case "teams":
		return ModeTeams, nil
	}
	return ModePlayers, fmt.Errorf("unknown directory view %q", s)
}

// Directory is the players/teams page. Both catalogs share one filter state.
type Directory struct {
	mode    Mode
	players *Page[models.Player]
	teams   *Page[models.Team]
}

// Projection is what the directory currently shows. Only the slice for
// Mode is populated.
type Projection struct {
	Mode    Mode
	Players []models.Player
	Teams   []models.Team
}

// Len returns the number of visible records
func (p Projection) Len() int {
	if p.Mode == ModeTeams {
		return len(p.Teams)
	}
	return len(p.Players)
}

// NewDirectory starts in players mode with default state
func NewDirectory(players *catalog.Catalog[models.Player], teams *catalog.Catalog[models.Team]) *Directory {
	return &Directory{
		mode:    ModePlayers,
		players: New(players),
		teams:   New(teams),
	}
}

// Mode returns the active view
func (d *Directory) Mode() Mode {
	return d.mode
}

// State returns the shared filter state
func (d *Directory) State() filter.State {
	return d.players.State()
}

// Toggle switches view. The search text carries over; game and country
// selections are cleared since their values belong to the other catalog.
func (d *Directory) Toggle() {
	if d.mode == ModePlayers {
		d.SetMode(ModeTeams)
	} else {
		d.SetMode(ModePlayers)
	}
}

// SetMode switches to m with the same rules as Toggle. Selecting the
// current mode changes nothing.
func (d *Directory) SetMode(m Mode) {
	if m == d.mode {
		return
	}
	d.mode = m
	d.apply(d.State().ClearCategories())
}

// SetSearch sets the search text shared by both views
func (d *Directory) SetSearch(text string) {
	d.players.SetSearch(text)
	d.teams.SetSearch(text)
}

// SetGame sets the game selection
func (d *Directory) SetGame(o filter.Option) {
	d.Set(filter.Game, o)
}

// SetCountry sets the country selection
func (d *Directory) SetCountry(o filter.Option) {
	d.Set(filter.Country, o)
}

// Set updates one category dimension
func (d *Directory) Set(dim filter.Dimension, o filter.Option) {
	d.apply(d.State().With(dim, o))
}

// Reset restores the default state without changing mode
func (d *Directory) Reset() {
	d.apply(filter.State{})
}

// Supports reports whether the active catalog has dimension dim
func (d *Directory) Supports(dim filter.Dimension) bool {
	if d.mode == ModeTeams {
		return d.teams.Supports(dim)
	}
	return d.players.Supports(dim)
}

// View recomputes the projection of the active catalog
func (d *Directory) View() (Projection, error) {
	out := Projection{Mode: d.mode}
	var err error
	if d.mode == ModeTeams {
		out.Teams, err = d.teams.View()
	} else {
		out.Players, err = d.players.View()
	}
	return out, err
}

// FindPlayer looks up a player for the details view
func (d *Directory) FindPlayer(id string) (models.Player, bool) {
	return d.players.Find(id)
}

// FindTeam looks up a team for the details view
func (d *Directory) FindTeam(id string) (models.Team, bool) {
	return d.teams.Find(id)
}

func (d *Directory) apply(s filter.State) {
	d.players.state = s
	d.teams.state = s
}

// Suggest returns fuzzy name matches for the current search in the active catalog
func (d *Directory) Suggest(limit int) []string {
	search := d.State().Search
	if d.mode == ModeTeams {
		return d.teams.Catalog().Suggest(search, limit)
	}
	return d.players.Catalog().Suggest(search, limit)
}
