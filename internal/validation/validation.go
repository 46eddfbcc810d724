// Package validation sanitizes the untrusted request query into a
// trusted one. It is the only place client input is inspected; everything
// downstream assumes the query is well-formed.
package validation

import (
	"math"
	"strconv"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/errs"
)

// POISearchParams is the raw, untrusted query-string payload bound from
// the transport layer.
type POISearchParams struct {
	MinLat            string `query:"minLat"`
	MinLng            string `query:"minLng"`
	MaxLat            string `query:"maxLat"`
	MaxLng            string `query:"maxLng"`
	Query             string `query:"query"`
	CategoryGroupCode string `query:"category_group_code"`
}

// coordinateBound is applied to all four coordinate fields, latitude
// included. The permissive longitude-range bound is part of the public
// contract; do not tighten it to [-90, 90] for latitudes.
const coordinateBound = 180.0

// ParsePOISearch validates the raw params and produces a TrustedQuery.
//
// Required fields are checked in a fixed order so the error always names
// the first missing one. Coordinate fields must parse as numbers within
// [-180, 180], boundaries included. The emitted rect reuses the raw
// string values, reordered to "minLng,minLat,maxLng,maxLat".
func ParsePOISearch(params POISearchParams) (domain.TrustedQuery, error) {
	required := []struct {
		name  string
		value string
	}{
		{"minLat", params.MinLat},
		{"minLng", params.MinLng},
		{"maxLat", params.MaxLat},
		{"maxLng", params.MaxLng},
		{"query", params.Query},
		{"category_group_code", params.CategoryGroupCode},
	}
	for _, field := range required {
		if field.value == "" {
			return domain.TrustedQuery{}, errs.NewValidationError("Missing required parameter: " + field.name)
		}
	}

	coordinates := []struct {
		name  string
		value string
	}{
		{"minLat", params.MinLat},
		{"minLng", params.MinLng},
		{"maxLat", params.MaxLat},
		{"maxLng", params.MaxLng},
	}
	for _, field := range coordinates {
		if err := checkCoordinate(field.name, field.value); err != nil {
			return domain.TrustedQuery{}, err
		}
	}

	return domain.TrustedQuery{
		Rect:              params.MinLng + "," + params.MinLat + "," + params.MaxLng + "," + params.MaxLat,
		Query:             params.Query,
		CategoryGroupCode: params.CategoryGroupCode,
	}, nil
}

func checkCoordinate(name, value string) error {
	n, err := strconv.ParseFloat(value, 64)
	// ParseFloat accepts "NaN" and "Inf" spellings; neither is a
	// coordinate.
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return errs.NewValidationError("Invalid coordinate for parameter: " + name)
	}
	if n < -coordinateBound || n > coordinateBound {
		return errs.NewValidationError("Coordinate out of range for parameter: " + name)
	}
	return nil
}
