// Package handler is the entry point for business logic after the
// router. It executes the validate → fan-out pipeline and is the single
// place that maps pipeline errors to client-visible status codes and
// messages.
package handler

import (
	"poi-gateway/internal/server"
)

// Handler is the base type holding the shared application container.
// Concrete handlers embed it to reach the config and logger.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only holds a pointer, so copies are cheap and share the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}
