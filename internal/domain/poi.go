// Package domain holds the data types that flow through the search
// pipeline: the trusted query produced by validation and the combined
// provider results returned to the client.
package domain

import "encoding/json"

// TrustedQuery is a sanitized search request. It is produced once per
// request by the validation layer and is immutable afterwards.
//
// Rect is the bounding rectangle as the four validated raw coordinate
// values joined in the fixed order "minLng,minLat,maxLng,maxLat".
type TrustedQuery struct {
	Rect              string
	Query             string
	CategoryGroupCode string
}

// DocumentList is a provider's native result records, passed through
// verbatim. The gateway never inspects, merges, or reorders them.
type DocumentList []json.RawMessage

// AggregateResult combines both providers' result lists for one request.
// The lists stay independent; there is no deduplication across providers.
type AggregateResult struct {
	NaverData DocumentList `json:"naver_data"`
	KakaoData DocumentList `json:"kakao_data"`
}
