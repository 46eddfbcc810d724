package provider

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/httpclient"
)

const (
	kakaoSearchURL = "https://dapi.kakao.com/v2/local/search/keyword.json"
	kakaoSize      = "15"
)

// Kakao adapts the Kakao Local keyword search API. Unlike Naver it takes
// the bounding rectangle and category group code directly.
type Kakao struct {
	apiKey string
	client *httpclient.Client

	// baseURL is overridden in tests.
	baseURL string
}

func NewKakao(apiKey string, client *httpclient.Client) *Kakao {
	return &Kakao{apiKey: apiKey, client: client, baseURL: kakaoSearchURL}
}

func (k *Kakao) Name() string { return "kakao" }

// Search runs one Kakao keyword search constrained to the query's
// bounding rectangle. A response without a documents field yields an
// empty list.
func (k *Kakao) Search(ctx context.Context, q domain.TrustedQuery) (domain.DocumentList, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("query", q.Query)
	params.Set("rect", q.Rect)
	params.Set("category_group_code", q.CategoryGroupCode)
	params.Set("size", kakaoSize)

	header := http.Header{}
	header.Set("Authorization", "KakaoAK "+k.apiKey)

	var body struct {
		Documents domain.DocumentList `json:"documents"`
	}
	err := k.client.GetJSON(ctx, httpclient.Request{
		URL:    k.baseURL + "?" + params.Encode(),
		Header: header,
	}, &body)
	observe(k.Name(), start, err)
	if err != nil {
		return nil, err
	}

	if body.Documents == nil {
		return domain.DocumentList{}, nil
	}
	return body.Documents, nil
}
