package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/perkwatch/perkwatch"
	apimiddleware "github.com/perkwatch/perkwatch/infrastructure/api/middleware"
)

// APIServer provides an HTTP API backed by a perkwatch Client.
type APIServer struct {
	client *perkwatch.Client
	server *Server
	router chi.Router
	logger *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given perkwatch Client.
func NewAPIServer(client *perkwatch.Client) *APIServer {
	return &APIServer{
		client: client,
		logger: client.Logger(),
	}
}

// mountRoutes wires up all routes on the given router.
func (a *APIServer) mountRoutes(router chi.Router) {
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	router.Use(apimiddleware.CorrelationID)
	router.Use(apimiddleware.Logging(a.logger))
	router.Use(chimiddleware.Timeout(batchTimeout))

	router.Mount("/", NewCompetitorsRouter(a.client).Routes())
}

// ListenAndServe starts the HTTP server on the given address.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.logger)
	a.server = &server

	a.mountRoutes(server.Router())
	return server.Start()
}

// Shutdown gracefully shuts down the server.
func (a *APIServer) Shutdown(ctx context.Context) error {
	if a.server == nil {
		return nil
	}
	return a.server.Shutdown(ctx)
}

// Handler returns the router as an http.Handler for use with custom servers.
func (a *APIServer) Handler() http.Handler {
	if a.router == nil {
		a.router = newRouter()
		a.mountRoutes(a.router)
	}
	return a.router
}
