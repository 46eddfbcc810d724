package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/httpclient"
)

const (
	naverSearchURL = "https://openapi.naver.com/v1/search/local.json"

	// Naver caps local search results at 5 per page.
	naverDisplay = "5"
)

// Naver adapts the Naver Local Search API. It is keyword-driven: the
// bounding rectangle cannot be sent, and the category is folded into the
// query text via the keyword table.
type Naver struct {
	clientID     string
	clientSecret string
	keywords     CategoryKeywords
	client       *httpclient.Client

	// baseURL is overridden in tests.
	baseURL string
}

// NewNaver builds the Naver adapter. A nil keywords table falls back to
// the default mapping.
func NewNaver(clientID, clientSecret string, keywords CategoryKeywords, client *httpclient.Client) *Naver {
	if keywords == nil {
		keywords = DefaultCategoryKeywords()
	}
	return &Naver{
		clientID:     clientID,
		clientSecret: clientSecret,
		keywords:     keywords,
		client:       client,
		baseURL:      naverSearchURL,
	}
}

func (n *Naver) Name() string { return "naver" }

// Search runs one Naver local search for the trusted query and returns
// the raw items list. A response without an items field yields an empty
// list, not an error.
func (n *Naver) Search(ctx context.Context, q domain.TrustedQuery) (domain.DocumentList, error) {
	start := time.Now()

	params := url.Values{}
	params.Set("query", n.buildQuery(q))
	params.Set("display", naverDisplay)

	header := http.Header{}
	header.Set("X-Naver-Client-Id", n.clientID)
	header.Set("X-Naver-Client-Secret", n.clientSecret)

	var body struct {
		Items domain.DocumentList `json:"items"`
	}
	err := n.client.GetJSON(ctx, httpclient.Request{
		URL:    n.baseURL + "?" + params.Encode(),
		Header: header,
	}, &body)
	observe(n.Name(), start, err)
	if err != nil {
		return nil, err
	}

	if body.Items == nil {
		return domain.DocumentList{}, nil
	}
	return body.Items, nil
}

// buildQuery appends the category-derived keyword, when one is mapped,
// to the free-text query.
func (n *Naver) buildQuery(q domain.TrustedQuery) string {
	keyword := n.keywords[q.CategoryGroupCode]
	return strings.TrimSpace(q.Query + " " + keyword)
}
