package server

import (
	"log/slog"
	"time"
)

// Keys for the built-in request logger's attributes.
const (
	LoggerStatusKey  = "status"
	LoggerMethodKey  = "method"
	LoggerPathKey    = "path"
	LoggerLatencyKey = "latency"
	LoggerSizeKey    = "size"
)

// Logger returns a middleware that logs one line per request using handler,
// at a level derived from the response status: 2xx at INFO, 4xx at WARN,
// 5xx at ERROR. It logs RemoteAddr directly rather than resolving a "real"
// client IP through a configurable reverse-proxy strategy, which this
// service has no need for.
func Logger(handler slog.Handler) MiddlewareFunc {
	log := slog.New(handler)
	return func(next HandlerFunc) HandlerFunc {
		return func(c *Context) {
			start := time.Now()
			next(c)
			latency := time.Since(start)

			log.LogAttrs(c.Request().Context(), level(c.Writer().Status()),
				c.Request().RemoteAddr,
				slog.Int(LoggerStatusKey, c.Writer().Status()),
				slog.String(LoggerMethodKey, c.Method()),
				slog.String(LoggerPathKey, c.Request().URL.Path),
				slog.Int(LoggerSizeKey, c.Writer().Size()),
				slog.Duration(LoggerLatencyKey, latency),
			)
		}
	}
}

func level(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	case status >= 300:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
