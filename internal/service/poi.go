// Package service is the use-case layer between the HTTP handler and the
// aggregation gateway. It adds no logic of its own; it exists so the
// pipeline's seams stay testable and swappable.
package service

import (
	"context"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/errs"
)

// POIGateway is the dependency the use case delegates to.
type POIGateway interface {
	FetchPOIs(ctx context.Context, q domain.TrustedQuery) (*domain.AggregateResult, error)
}

// POISearchService orchestrates one validated search.
type POISearchService struct {
	gateway POIGateway
}

// NewPOISearchService checks its dependency once at composition time
// rather than at every call site.
func NewPOISearchService(gw POIGateway) (*POISearchService, error) {
	if gw == nil {
		return nil, errs.NewConfigurationError("poi search service requires a gateway")
	}
	return &POISearchService{gateway: gw}, nil
}

// Execute delegates entirely to the gateway.
func (s *POISearchService) Execute(ctx context.Context, q domain.TrustedQuery) (*domain.AggregateResult, error) {
	return s.gateway.FetchPOIs(ctx, q)
}
