package gateway

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/errs"
)

// stubProvider is a scriptable SearchProvider.
type stubProvider struct {
	name  string
	data  domain.DocumentList
	err   error
	delay time.Duration

	cancelled bool
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Search(ctx context.Context, q domain.TrustedQuery) (domain.DocumentList, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			s.cancelled = true
			return nil, errs.NewNetworkError("upstream request failed", 0, ctx.Err())
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func docs(values ...string) domain.DocumentList {
	out := domain.DocumentList{}
	for _, v := range values {
		out = append(out, json.RawMessage(`{"name":"`+v+`"}`))
	}
	return out
}

func query() domain.TrustedQuery {
	return domain.TrustedQuery{Rect: "127.0,37.5,127.1,37.6", Query: "coffee", CategoryGroupCode: "CE7"}
}

func TestFetchPOIs_CombinesBothResults(t *testing.T) {
	naver := &stubProvider{name: "naver", data: docs("a", "b")}
	kakao := &stubProvider{name: "kakao", data: docs("c")}

	result, err := New(naver, kakao).FetchPOIs(context.Background(), query())
	require.NoError(t, err)

	assert.Equal(t, naver.data, result.NaverData)
	assert.Equal(t, kakao.data, result.KakaoData)
}

func TestFetchPOIs_EmptyListsArePreserved(t *testing.T) {
	naver := &stubProvider{name: "naver", data: domain.DocumentList{}}
	kakao := &stubProvider{name: "kakao", data: domain.DocumentList{}}

	result, err := New(naver, kakao).FetchPOIs(context.Background(), query())
	require.NoError(t, err)

	assert.NotNil(t, result.NaverData)
	assert.NotNil(t, result.KakaoData)
	assert.Empty(t, result.NaverData)
	assert.Empty(t, result.KakaoData)
}

func TestFetchPOIs_FailFastOnEitherProvider(t *testing.T) {
	boom := errs.NewNetworkError("upstream returned non-2xx status", 502, nil)

	cases := []struct {
		name         string
		naver, kakao *stubProvider
	}{
		{
			name:  "naver fails",
			naver: &stubProvider{name: "naver", err: boom},
			kakao: &stubProvider{name: "kakao", data: docs("c")},
		},
		{
			name:  "kakao fails",
			naver: &stubProvider{name: "naver", data: docs("a")},
			kakao: &stubProvider{name: "kakao", err: boom},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := New(tc.naver, tc.kakao).FetchPOIs(context.Background(), query())

			// The failing provider's error propagates unchanged and no
			// partial result leaks out.
			assert.Nil(t, result)
			var networkErr *errs.NetworkError
			require.ErrorAs(t, err, &networkErr)
			assert.Equal(t, 502, networkErr.StatusCode)
		})
	}
}

func TestFetchPOIs_FirstFailureCancelsSibling(t *testing.T) {
	fast := &stubProvider{name: "naver", err: errs.NewNetworkError("upstream request failed", 0, nil)}
	slow := &stubProvider{name: "kakao", data: docs("c"), delay: 5 * time.Second}

	start := time.Now()
	_, err := New(fast, slow).FetchPOIs(context.Background(), query())
	elapsed := time.Since(start)

	require.Error(t, err)
	// The slow call is cancelled instead of running out its delay.
	assert.Less(t, elapsed, time.Second)
	assert.True(t, slow.cancelled)
}

func TestFetchPOIs_TimeoutOnOneLegFailsTheRequest(t *testing.T) {
	timedOut := &stubProvider{name: "naver", err: errs.NewNetworkError("upstream request failed", 0, context.DeadlineExceeded)}
	healthy := &stubProvider{name: "kakao", data: docs("c")}

	result, err := New(timedOut, healthy).FetchPOIs(context.Background(), query())

	assert.Nil(t, result)
	var networkErr *errs.NetworkError
	require.ErrorAs(t, err, &networkErr)
}
