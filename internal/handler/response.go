package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"poi-gateway/internal/errs"
)

// SuccessResponse is the envelope for 200 responses.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// ErrorResponse is the envelope for every non-2xx response.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Generic client-visible messages. Upstream bodies and internal error
// text are logged, never echoed.
const (
	msgConfiguration = "The server is not configured correctly."
	msgUnavailable   = "An external service is temporarily unavailable."
	msgInternal      = "An unexpected error occurred."
	msgNotFound      = "The requested resource was not found."
)

// RespondError logs the full failure detail and writes the safe,
// classified response. It is the only place a pipeline error becomes a
// status code:
//
//	ValidationError    -> 400, original message (names only the bad field)
//	NetworkError       -> 503, generic message
//	ConfigurationError -> 500, generic message
//	anything else      -> 500, generic message
func RespondError(c echo.Context, logger *zerolog.Logger, err error) error {
	var (
		validationErr    *errs.ValidationError
		networkErr       *errs.NetworkError
		configurationErr *errs.ConfigurationError
	)

	switch {
	case errors.As(err, &validationErr):
		logger.Warn().
			Str("error_type", "validation").
			Msg(validationErr.Message)
		return respond(c, http.StatusBadRequest, "Bad Request", validationErr.Message)

	case errors.As(err, &networkErr):
		logger.Error().
			Str("error_type", "network").
			Int("upstream_status", networkErr.StatusCode).
			AnErr("cause", networkErr.Cause).
			Msg(networkErr.Message)
		return respond(c, http.StatusServiceUnavailable, "Service Unavailable", msgUnavailable)

	case errors.As(err, &configurationErr):
		logger.Error().
			Str("error_type", "configuration").
			Msg(configurationErr.Message)
		return respond(c, http.StatusInternalServerError, "Configuration Error", msgConfiguration)

	default:
		logger.Error().
			Str("error_type", "internal").
			Err(err).
			Msg("unclassified error")
		return respond(c, http.StatusInternalServerError, "Internal Server Error", msgInternal)
	}
}

func respond(c echo.Context, status int, errType, message string) error {
	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Type: errType, Message: message},
	})
}

// RespondNotFound writes the 404 envelope used for every unknown path.
func RespondNotFound(c echo.Context) error {
	return respond(c, http.StatusNotFound, "Not Found", msgNotFound)
}

// RespondInternal writes the generic 500 envelope, used by the router's
// error handler for stray errors that never went through the pipeline.
func RespondInternal(c echo.Context) error {
	return respond(c, http.StatusInternalServerError, "Internal Server Error", msgInternal)
}
