// Package provider contains the adapters for the two external POI search
// services. Each adapter turns a trusted query into one provider-native
// request and normalizes the reply to a plain document list; records pass
// through verbatim. The adapters depend only on their credentials and the
// shared outbound HTTP client, never on each other.
package provider

import (
	"context"
	"time"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/metrics"
)

// SearchProvider is one external POI search source.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, q domain.TrustedQuery) (domain.DocumentList, error)
}

// observe records the per-provider call metrics.
func observe(name string, start time.Time, err error) {
	metrics.ProviderRequestsTotal.WithLabelValues(name).Inc()
	metrics.ProviderDurationMs.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.ProviderFailTotal.WithLabelValues(name).Inc()
		return
	}
	metrics.ProviderSuccessTotal.WithLabelValues(name).Inc()
}
