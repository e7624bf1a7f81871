// Package api serves the rendered pages and their JSON view models over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/rulesview/internal/logging"
	"github.com/meur/rulesview/internal/render"
	"github.com/meur/rulesview/internal/storage"
	"go.uber.org/zap"
)

// Options tunes the HTTP server
type Options struct {
	// AllowedOrigins for CORS on /api. Empty allows any origin.
	AllowedOrigins []string

	// AssetsDir overrides the bundled assets when it exists
	AssetsDir string
}

// Server holds the HTTP server dependencies
type Server struct {
	catalog  *storage.Catalog
	renderer *render.Renderer
	logger   *zap.Logger
	opts     Options
	router   chi.Router
}

// New creates a new server over an already loaded catalog
func New(catalog *storage.Catalog, renderer *render.Renderer, logger *zap.Logger, opts Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		catalog:  catalog,
		renderer: renderer,
		logger:   logger,
		opts:     opts,
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
	s.router.Use(middleware.RealIP)
	s.router.Use(logging.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
}

func (s *Server) setupRoutes() {
	// Pages
	s.router.Group(func(r chi.Router) {
		r.Use(s.etag)
		r.Get("/", s.handleIndex)
		r.Get("/armies", s.handleArmies)
		r.Get("/armies/{army}", s.handleArmy)
		r.Get("/regiments", s.handleRegiments)
		r.Get("/manifestations", s.handleManifestations)
		r.Get("/faq", s.handleFAQ)
	})

	s.router.Route("/api", func(r chi.Router) {
		r.Use(s.cors())
		r.Use(s.etag)

		r.Get("/info", s.handleGetInfo)
		r.Get("/armies", s.handleGetArmies)
		r.Get("/armies/{army}", s.handleGetArmy)
		r.Get("/regiments", s.handleGetRegiments)
		r.Get("/manifestations", s.handleGetManifestations)
		r.Get("/faq", s.handleGetFAQ)
	})

	FileServer(s.router, "/assets", s.assets())

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

func (s *Server) cors() func(http.Handler) http.Handler {
	origins := s.opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	})
}

func (s *Server) assets() http.FileSystem {
	if dir := s.opts.AssetsDir; dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return http.Dir(dir)
		}
		s.logger.Debug("Assets dir not found, using bundled assets", zap.String("dir", dir))
	}
	return http.FS(render.Assets())
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
