package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/herald/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr       string
	hookSecret string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithHookSecret sets the secret used to verify lifecycle hook signatures
func WithHookSecret(secret string) Option {
	return func(c *config) {
		c.hookSecret = secret
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates the HTTP server exposing the lifecycle hook endpoints.
func NewServer(
	ctx context.Context,
	notifyUC interfaces.NotifyUseCase,
	opts ...Option,
) (*Server, error) {
	cfg := &config{
		addr: "localhost:8080",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	// Health check
	router.Get("/health", handleHealth)

	// Lifecycle hook endpoints
	hooks := NewHookHandler(cfg.hookSecret, notifyUC)
	router.Post("/hooks/ci/checkout", hooks.HandleCheckout)
	router.Post("/hooks/ci/completed", hooks.HandleCompleted)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
