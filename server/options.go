package server

import "log/slog"

// Option configures a Server using the functional-options pattern.
type Option interface {
	apply(*Server)
}

type optionFunc func(*Server)

func (o optionFunc) apply(s *Server) { o(s) }

// WithAddr sets the address the server listens on. Defaults to ":8080".
func WithAddr(addr string) Option {
	return optionFunc(func(s *Server) {
		if addr != "" {
			s.addr = addr
		}
	})
}

// WithMiddleware appends middleware to the chain applied to every route,
// in the order given. With DefaultOptions, Recovery and Logger are the
// outermost middleware; middleware added here runs inside of them.
func WithMiddleware(mws ...MiddlewareFunc) Option {
	return optionFunc(func(s *Server) {
		s.mws = append(s.mws, mws...)
	})
}

// WithLogHandler overrides the slog.Handler used by the request logger
// middleware. Defaults to slogpretty.DefaultHandler.
func WithLogHandler(h slog.Handler) Option {
	return optionFunc(func(s *Server) {
		if h != nil {
			s.logHandler = h
		}
	})
}

// DefaultOptions pushes the Recovery and Logger middleware, in that order,
// ahead of anything added through WithMiddleware.
func DefaultOptions() Option {
	return optionFunc(func(s *Server) {
		s.useDefaults = true
	})
}
