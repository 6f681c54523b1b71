package server

import (
	"log/slog"
	"net/http"
	"runtime"
	"strings"

	"ranktree/internal/slogpretty"
)

// LoggerPanicKey is the attribute key the recovery middleware logs the
// recovered panic value under.
const LoggerPanicKey = "panic"

// Recovery returns a middleware that recovers from any panic raised by a
// handler, logs it with a short stack trace through slogpretty's default
// handler, and responds with 500. It does not dump the raw request with
// redacted headers: this API has no authentication headers worth
// redacting, so it logs just the route pattern, the panic value and the
// stack trace.
func Recovery() MiddlewareFunc {
	return CustomRecovery(slogpretty.DefaultHandler)
}

// CustomRecovery is Recovery parameterized over the slog.Handler used to
// log the panic.
func CustomRecovery(handler slog.Handler) MiddlewareFunc {
	logger := slog.New(handler)
	return func(next HandlerFunc) HandlerFunc {
		return func(c *Context) {
			defer recoverFrom(logger, c)
			next(c)
		}
	}
}

func recoverFrom(logger *slog.Logger, c *Context) {
	err := recover()
	if err == nil {
		return
	}

	logger.Error("recovered from panic",
		slog.String(LoggerPathKey, c.Pattern()),
		slog.Any(LoggerPanicKey, err),
		slog.String("stack", stacktrace(3, 6)),
	)

	if !c.Writer().Written() {
		http.Error(c.Writer(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func stacktrace(skip, nFrames int) string {
	pcs := make([]uintptr, nFrames+1)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return "(no stack)"
	}
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	i := 0
	for {
		frame, more := frames.Next()
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(frame.Function)
		if !more {
			break
		}
		i++
		if i >= nFrames {
			b.WriteString("\n(rest of stack elided)")
			break
		}
	}
	return b.String()
}
