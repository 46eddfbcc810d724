package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"poi-gateway/internal/config"
	"poi-gateway/internal/errs"
	"poi-gateway/internal/gateway"
	"poi-gateway/internal/httpclient"
	"poi-gateway/internal/metrics"
	"poi-gateway/internal/middleware"
	"poi-gateway/internal/provider"
	"poi-gateway/internal/server"
	"poi-gateway/internal/service"
	"poi-gateway/internal/validation"
)

// POIHandler serves GET /pois.
//
// Its pipeline (credentials → outbound client → adapters → gateway →
// service) is built lazily on the first request and memoized, failure
// included: when credential loading fails, every subsequent request
// short-circuits to the same configuration error before any validation
// runs. sync.OnceValues serializes concurrent first requests so the
// build happens exactly once.
type POIHandler struct {
	Handler

	pipeline func() (*service.POISearchService, error)
}

func NewPOIHandler(s *server.Server) *POIHandler {
	h := &POIHandler{Handler: NewHandler(s)}
	h.pipeline = sync.OnceValues(h.buildPipeline)
	return h
}

func (h *POIHandler) buildPipeline() (*service.POISearchService, error) {
	creds, err := config.LoadCredentials()
	if err != nil {
		return nil, err
	}

	// One shared transport for both adapters; per-call deadlines come
	// from the outbound client.
	client := httpclient.New(&http.Client{})

	naver := provider.NewNaver(creds.NaverClientID, creds.NaverClientSecret, nil, client)
	kakao := provider.NewKakao(creds.KakaoRESTAPIKey, client)

	return service.NewPOISearchService(gateway.New(naver, kakao))
}

// SearchPOIs runs the request pipeline: credentials, validation, fan-out,
// response. Each stage's failure is classified by RespondError.
func (h *POIHandler) SearchPOIs(c echo.Context) error {
	start := time.Now()
	metrics.RequestsTotal.Inc()
	defer func() {
		metrics.RequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}()

	logger := middleware.GetLogger(c).With().
		Str("operation", "search_pois").
		Logger()

	svc, err := h.pipeline()
	if err != nil {
		return RespondError(c, &logger, err)
	}

	var params validation.POISearchParams
	if err := c.Bind(&params); err != nil {
		return RespondError(c, &logger, errs.NewValidationError("Malformed query parameters"))
	}

	trusted, err := validation.ParsePOISearch(params)
	if err != nil {
		return RespondError(c, &logger, err)
	}

	result, err := svc.Execute(c.Request().Context(), trusted)
	if err != nil {
		return RespondError(c, &logger, err)
	}

	logger.Info().
		Int("naver_results", len(result.NaverData)).
		Int("kakao_results", len(result.KakaoData)).
		Dur("duration", time.Since(start)).
		Msg("search completed")

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: result})
}
