// Package middleware contains the Echo middlewares shared by all routes:
// request-ID correlation and the request-scoped logger.
package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// LoggerKey is the key for the request-scoped logger in both the Echo
// context and the request's context.Context.
const LoggerKey = "logger"

// ContextEnhancer enriches every request with a request-scoped logger
// carrying correlation fields (request_id, method, path, ip).
type ContextEnhancer struct {
	logger *zerolog.Logger
}

func NewContextEnhancer(logger *zerolog.Logger) *ContextEnhancer {
	return &ContextEnhancer{logger: logger}
}

// EnhanceContext returns the middleware. The enriched logger is stored
// in the Echo context for handlers and in the Go request context for
// code that only sees a context.Context.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			c.Set(LoggerKey, &contextLogger)

			ctx := context.WithValue(c.Request().Context(), loggerCtxKey{}, &contextLogger)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

type loggerCtxKey struct{}

// GetLogger returns the request-scoped logger from the Echo context,
// falling back to a no-op logger when the enhancer did not run (tests,
// stray error paths).
func GetLogger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	nop := zerolog.Nop()
	return &nop
}
