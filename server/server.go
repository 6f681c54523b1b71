// Package server exposes a ranking.Service over a small, fixed HTTP
// surface: a router, request context, response writer, and middleware
// chain sized for five routes rather than an arbitrary user-defined tree
// of them.
package server

import (
	"log/slog"
	"net/http"

	"ranktree/internal/slogpretty"
	"ranktree/ranking"
)

// Server serves the players-ranking API described in the route table
// below over HTTP.
type Server struct {
	addr        string
	svc         *ranking.Service
	routes      []route
	mws         []MiddlewareFunc
	logHandler  slog.Handler
	useDefaults bool
}

// New builds a Server backed by svc. Without DefaultOptions, no middleware
// runs except whatever is passed via WithMiddleware.
func New(svc *ranking.Service, opts ...Option) *Server {
	s := &Server{
		addr:       ":8080",
		svc:        svc,
		logHandler: slogpretty.DefaultHandler,
	}
	for _, o := range opts {
		o.apply(s)
	}
	if s.useDefaults {
		s.mws = append([]MiddlewareFunc{Recovery(), Logger(s.logHandler)}, s.mws...)
	}

	s.handle(http.MethodPost, "/players/", "POST /players/{name}", registerHandler(svc))
	s.handle(http.MethodDelete, "/players/", "DELETE /players/{name}", unregisterHandler(svc))
	s.handle(http.MethodGet, "/players/", "GET /players/{name}", getPlayerHandler(svc))
	s.handle(http.MethodPost, "/rollback/", "POST /rollback/{delta}", rollbackHandler(svc))
	s.handle(http.MethodGet, "/version", "GET /version", versionHandler(svc))

	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// ListenAndServe starts an http.Server bound to Addr and serving s.
func (s *Server) ListenAndServe() error {
	return (&http.Server{Addr: s.addr, Handler: s}).ListenAndServe()
}
