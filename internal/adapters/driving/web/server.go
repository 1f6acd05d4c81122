package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/custodia-labs/promptvault/internal/logger"
)

// Server is the HTTP API server.
type Server struct {
	handler http.Handler
}

// NewServer builds the API routes behind a rate limiter allowing
// perSecond requests per second.
func NewServer(ports *Ports, perSecond float64) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	h := NewHandlers(ports.Catalog)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/prompts", h.HandlePrompts)
	mux.HandleFunc("GET /api/prompts/{index}", h.HandlePrompt)
	mux.HandleFunc("GET /api/facets", h.HandleFacets)
	mux.HandleFunc("GET /api/status", h.HandleStatus)

	limiter := NewRateLimiter(perSecond)
	return &Server{handler: logRequests(limiter.Wrap(mux))}, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("api: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("%s %s (%s)", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}
