package music

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
)

type Server struct {
	store     Store
	uploads   Uploader
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *log.Logger
}

func NewServer(store Store, uploads Uploader, jwtSecret []byte, tokenTTL time.Duration, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		store:     store,
		uploads:   uploads,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

func (s *Server) Router(middlewares ...func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/users", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.With(requireObjectID).Get("/users/{id}", s.handleGetUser)
			r.Get("/songs/like", s.handleListLiked)
			r.With(requireObjectID).Put("/songs/like/{id}", s.handleToggleLike)
		})

		r.Get("/songs", s.handleListSongs)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAdmin)
			r.Post("/songs", s.handleCreateSong)
			r.With(requireObjectID).Put("/songs/{id}", s.handleUpdateSong)
			r.With(requireObjectID).Delete("/songs/{id}", s.handleDeleteSong)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"service": "music-service",
	})
}
