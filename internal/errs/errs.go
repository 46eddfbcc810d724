// Package errs defines the gateway's error taxonomy.
//
// There are exactly three kinds of failure the pipeline can produce:
//
//   - ConfigurationError: the server itself is misconfigured (missing
//     credentials, missing dependency at composition time). Never caused
//     by client input.
//   - ValidationError: the client sent a malformed request. The message
//     only names the offending field, so it is safe to echo back.
//   - NetworkError: an upstream provider call failed (transport error,
//     timeout, non-2xx status, or unparsable body). The upstream status
//     and cause are carried for logging only and never shown to clients.
//
// The set is closed on purpose: the top-level handler matches these three
// kinds exhaustively with errors.As and defaults anything else to an
// internal server error.
package errs

import "fmt"

// ConfigurationError reports missing or invalid server-side setup.
type ConfigurationError struct {
	Message string
}

func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{Message: message}
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ValidationError reports client input that failed a syntactic or
// semantic check. The message names the malformed field and nothing else.
type ValidationError struct {
	Message string
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NetworkError reports a failed upstream provider call.
//
// StatusCode is the upstream HTTP status when one was received; it is 0
// for transport-level failures and timeouts. Cause holds the underlying
// error or raw response body for logs.
type NetworkError struct {
	Message    string
	StatusCode int
	Cause      error
}

func NewNetworkError(message string, statusCode int, cause error) *NetworkError {
	return &NetworkError{Message: message, StatusCode: statusCode, Cause: cause}
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (upstream status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is / errors.As chains.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}
