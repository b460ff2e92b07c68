package api

import (
	"errors"
	"net/http"

	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/filter"
	"github.com/meur/arena/internal/models"
	"github.com/meur/arena/internal/page"
)

// ListResponse is the body of every listing endpoint
type ListResponse[T any] struct {
	Items        []T          `json:"items"`
	TotalCount   int          `json:"total_count"`
	CatalogTotal int          `json:"catalog_total"`
	CatalogID    string       `json:"catalog_id"`
	View         string       `json:"view,omitempty"`
	Filters      filter.State `json:"filters"`
	Suggestions  []string     `json:"suggestions"`
}

// handleListTournaments returns the tournaments matching the query filters
func (s *Server) handleListTournaments(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, s.catalogs.Tournaments)
}

// handleListPlayers returns the players matching the query filters
func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, s.catalogs.Players)
}

// handleListTeams returns the teams matching the query filters
func (s *Server) handleListTeams(w http.ResponseWriter, r *http.Request) {
	serveList(s, w, r, s.catalogs.Teams)
}

// handleDirectory serves the players/teams directory. The view query
// parameter picks the catalog; filters apply to whichever is shown.
func (s *Server) handleDirectory(w http.ResponseWriter, r *http.Request) {
	mode, err := page.ParseMode(r.URL.Query().Get("view"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_VIEW", err.Error())
		return
	}
	state, ok := parseState(w, r)
	if !ok {
		return
	}

	dir := page.NewDirectory(s.catalogs.Players, s.catalogs.Teams)
	dir.SetMode(mode)
	dir.SetSearch(state.Search)
	for _, d := range filter.Dimensions {
		dir.Set(d, state.Option(d))
	}

	view, err := dir.View()
	if err != nil {
		respondFilterError(w, err)
		return
	}

	if mode == page.ModeTeams {
		respondJSON(w, http.StatusOK, newListResponse(s, s.catalogs.Teams, view.Teams, state, mode.String()))
		return
	}
	respondJSON(w, http.StatusOK, newListResponse(s, s.catalogs.Players, view.Players, state, mode.String()))
}

// handleTournamentFilters returns the filter controls for tournaments
func (s *Server) handleTournamentFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.TournamentFilters(s.catalogs.Tournaments.Records()))
}

// handlePlayerFilters returns the filter controls for players
func (s *Server) handlePlayerFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.PlayerFilters(s.catalogs.Players.Records()))
}

// handleTeamFilters returns the filter controls for teams
func (s *Server) handleTeamFilters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.TeamFilters(s.catalogs.Teams.Records()))
}

func serveList[T filter.Record](s *Server, w http.ResponseWriter, r *http.Request, c *catalog.Catalog[T]) {
	state, ok := parseState(w, r)
	if !ok {
		return
	}

	items, err := c.Project(state)
	if err != nil {
		respondFilterError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, newListResponse(s, c, items, state, ""))
}

func newListResponse[T filter.Record](s *Server, c *catalog.Catalog[T], items []T, state filter.State, view string) ListResponse[T] {
	suggestions := []string{}
	if len(items) == 0 && state.Search != "" {
		suggestions = c.Suggest(state.Search, s.cfg.SuggestionLimit)
	}
	return ListResponse[T]{
		Items:        items,
		TotalCount:   len(items),
		CatalogTotal: c.Len(),
		CatalogID:    c.ID(),
		View:         view,
		Filters:      state,
		Suggestions:  suggestions,
	}
}

// parseState reads the filter state from the query string. On failure it
// writes the error response and returns false.
func parseState(w http.ResponseWriter, r *http.Request) (filter.State, bool) {
	q := r.URL.Query()
	state := filter.State{
		Search:  q.Get("search"),
		Game:    filter.ParseOption(q.Get("game")),
		Country: filter.ParseOption(q.Get("country")),
	}

	status, err := models.StatusOption(q.Get("status"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_STATUS", err.Error())
		return filter.State{}, false
	}
	state.Status = status

	return state, true
}

func respondFilterError(w http.ResponseWriter, err error) {
	if errors.Is(err, filter.ErrUnsupportedDimension) {
		respondError(w, http.StatusBadRequest, "UNSUPPORTED_FILTER", err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, "INTERNAL", "Failed to filter catalog")
}
