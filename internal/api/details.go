package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/filter"
)

// handleGetTournament returns a tournament by ID
func (s *Server) handleGetTournament(w http.ResponseWriter, r *http.Request) {
	serveDetail(w, r, s.catalogs.Tournaments, "Tournament not found")
}

// handleGetPlayer returns a player by ID
func (s *Server) handleGetPlayer(w http.ResponseWriter, r *http.Request) {
	serveDetail(w, r, s.catalogs.Players, "Player not found")
}

// handleGetTeam returns a team by ID
func (s *Server) handleGetTeam(w http.ResponseWriter, r *http.Request) {
	serveDetail(w, r, s.catalogs.Teams, "Team not found")
}

func serveDetail[T filter.Record](w http.ResponseWriter, r *http.Request, c *catalog.Catalog[T], notFound string) {
	id := chi.URLParam(r, "id")

	record, ok := c.Find(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", notFound)
		return
	}

	respondJSON(w, http.StatusOK, record)
}
