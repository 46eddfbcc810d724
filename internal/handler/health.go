package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"poi-gateway/internal/server"
)

// HealthHandler exposes the liveness endpoint used by load balancers and
// uptime monitors. The gateway holds no stateful dependencies, so a
// running process is a healthy process; provider reachability is a
// per-request concern, not a health one.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(s)}
}

// CheckHealth returns 200 with the service status. It succeeds even
// when provider credentials are missing: the process is alive and able
// to answer, which is exactly what this endpoint reports.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Env,
	})
}
