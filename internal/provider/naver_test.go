package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/errs"
	"poi-gateway/internal/httpclient"
)

func trustedQuery() domain.TrustedQuery {
	return domain.TrustedQuery{
		Rect:              "127.0,37.5,127.1,37.6",
		Query:             "coffee",
		CategoryGroupCode: "CE7",
	}
}

func newTestNaver(url string) *Naver {
	n := NewNaver("id", "secret", nil, httpclient.New(nil))
	n.baseURL = url
	return n
}

func TestNaver_Search(t *testing.T) {
	var gotQuery, gotDisplay, gotID, gotSecret string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotDisplay = r.URL.Query().Get("display")
		gotID = r.Header.Get("X-Naver-Client-Id")
		gotSecret = r.Header.Get("X-Naver-Client-Secret")
		_, _ = w.Write([]byte(`{"items":[{"title":"카페 한잔"},{"title":"another"}]}`))
	}))
	defer srv.Close()

	items, err := newTestNaver(srv.URL).Search(context.Background(), trustedQuery())
	require.NoError(t, err)

	require.Len(t, items, 2)
	// Records pass through verbatim.
	var first map[string]string
	require.NoError(t, json.Unmarshal(items[0], &first))
	assert.Equal(t, "카페 한잔", first["title"])

	// CE7 maps to a keyword appended to the free-text query.
	assert.Equal(t, "coffee 카페", gotQuery)
	assert.Equal(t, "5", gotDisplay)
	assert.Equal(t, "id", gotID)
	assert.Equal(t, "secret", gotSecret)
}

func TestNaver_BuildQuery(t *testing.T) {
	n := NewNaver("id", "secret", CategoryKeywords{"CE7": "카페"}, httpclient.New(nil))

	q := trustedQuery()
	assert.Equal(t, "coffee 카페", n.buildQuery(q))

	// Unmapped codes contribute nothing; the query stays trimmed.
	q.CategoryGroupCode = "ZZ9"
	assert.Equal(t, "coffee", n.buildQuery(q))
}

func TestNaver_MissingItemsYieldsEmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":0}`))
	}))
	defer srv.Close()

	items, err := newTestNaver(srv.URL).Search(context.Background(), trustedQuery())
	require.NoError(t, err)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestNaver_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := newTestNaver(srv.URL).Search(context.Background(), trustedQuery())

	var networkErr *errs.NetworkError
	require.ErrorAs(t, err, &networkErr)
	assert.Equal(t, http.StatusTooManyRequests, networkErr.StatusCode)
}
