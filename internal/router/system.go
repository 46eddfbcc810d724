package router

import (
	"github.com/labstack/echo/v4"

	"poi-gateway/internal/handler"
	"poi-gateway/internal/metrics"
	"poi-gateway/internal/server"
)

// registerSystemRoutes registers the endpoints that are not business
// logic: health for monitors and the Prometheus scrape target.
func registerSystemRoutes(e *echo.Echo, s *server.Server) {
	health := handler.NewHealthHandler(s)
	e.GET("/status", health.CheckHealth)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
