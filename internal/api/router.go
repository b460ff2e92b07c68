package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/arena/internal/catalog"
	"github.com/meur/arena/internal/config"
)

// Server holds the HTTP server dependencies
type Server struct {
	catalogs *catalog.Set
	cfg      *config.Config
	logger   *slog.Logger
	router   chi.Router
}

// New creates a new API server
func New(catalogs *catalog.Set, cfg *config.Config, logger *slog.Logger) *Server {
	s := &Server{
		catalogs: catalogs,
		cfg:      cfg,
		logger:   logger,
		router:   chi.NewRouter(),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RequestLogger(s.logger))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.CORSAllowOrigins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders: []string{"X-Request-Id", "Retry-After"},
		MaxAge:         300,
	}))
	// Keyed on the peer address, so it runs before RealIP rewrites it
	if s.cfg.RateLimitEnabled {
		s.router.Use(RateLimitMiddleware(s.cfg.RateLimitRequests, s.cfg.RateLimitWindow))
	}
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Tournaments
		r.Get("/tournaments", s.handleListTournaments)
		r.Get("/tournaments/filters", s.handleTournamentFilters)
		r.Get("/tournaments/{id}", s.handleGetTournament)

		// Players
		r.Get("/players", s.handleListPlayers)
		r.Get("/players/filters", s.handlePlayerFilters)
		r.Get("/players/{id}", s.handleGetPlayer)

		// Teams
		r.Get("/teams", s.handleListTeams)
		r.Get("/teams/filters", s.handleTeamFilters)
		r.Get("/teams/{id}", s.handleGetTeam)

		// Players/teams directory with view toggle
		r.Get("/directory", s.handleDirectory)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Serve the built frontend for production deployment
	if s.cfg.StaticDir != "" {
		serveFrontend(s.router, s.cfg.StaticDir)
	}
}

// --- Response helpers ---

// ErrorResponse is the error shape for all API errors
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, status, resp)
}
