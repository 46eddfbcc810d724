// Package router initializes the HTTP router (using Echo).
//
// It registers the shared middlewares, maps the routes to their
// handlers, and installs the JSON error handler that turns every unknown
// path into the 404 envelope.
package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"poi-gateway/internal/handler"
	"poi-gateway/internal/middleware"
	"poi-gateway/internal/server"
)

// New builds the Echo instance with all middlewares and routes.
func New(s *server.Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Order matters: the request ID must exist before the
	// context-enhanced logger picks it up.
	e.Use(middleware.RequestID())
	e.Use(middleware.NewContextEnhancer(s.Logger).EnhanceContext())
	e.Use(echomw.Recover())
	// The gateway is the credential holder for browser clients, so CORS
	// is open to all origins.
	e.Use(echomw.CORS())

	e.HTTPErrorHandler = errorHandler(s)

	poi := handler.NewPOIHandler(s)
	e.GET("/pois", poi.SearchPOIs)

	registerSystemRoutes(e, s)

	return e
}

// errorHandler formats every error that escapes a handler as the JSON
// error envelope. Unknown paths and method mismatches both become the
// 404 envelope; anything unclassified falls through to the generic 500.
func errorHandler(s *server.Server) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			switch httpErr.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				_ = handler.RespondNotFound(c)
				return
			}
		}

		s.Logger.Error().
			Err(err).
			Str("path", c.Request().URL.Path).
			Msg("unhandled router error")
		_ = handler.RespondInternal(c)
	}
}
