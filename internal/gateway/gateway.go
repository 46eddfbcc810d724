// Package gateway fans a trusted query out to both search providers
// concurrently and combines their results.
package gateway

import (
	"context"

	"golang.org/x/sync/errgroup"

	"poi-gateway/internal/domain"
	"poi-gateway/internal/provider"
)

// Gateway runs both provider adapters against the same trusted query.
type Gateway struct {
	naver provider.SearchProvider
	kakao provider.SearchProvider
}

func New(naver, kakao provider.SearchProvider) *Gateway {
	return &Gateway{naver: naver, kakao: kakao}
}

// FetchPOIs invokes both providers concurrently and fails fast: the
// first provider error becomes the gateway's error, the sibling call's
// context is cancelled, and no partial result is ever returned. On
// success both lists are combined untouched.
func (g *Gateway) FetchPOIs(ctx context.Context, q domain.TrustedQuery) (*domain.AggregateResult, error) {
	grp, ctx := errgroup.WithContext(ctx)

	var naverData, kakaoData domain.DocumentList

	grp.Go(func() error {
		data, err := g.naver.Search(ctx, q)
		if err != nil {
			return err
		}
		naverData = data
		return nil
	})
	grp.Go(func() error {
		data, err := g.kakao.Search(ctx, q)
		if err != nil {
			return err
		}
		kakaoData = data
		return nil
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return &domain.AggregateResult{
		NaverData: naverData,
		KakaoData: kakaoData,
	}, nil
}
