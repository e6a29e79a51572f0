package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags the failure classes the upstream API can produce.
type ErrorKind int

const (
	ErrKindNetwork ErrorKind = iota
	ErrKindDecoding
	ErrKindNoData
	ErrKindInvalidResponse
	ErrKindHTTPStatus
	ErrKindAPI
)

// APICodePlanUnavailable is the CoinMarketCap error code for "your plan does
// not support this endpoint". It is the only code the service layer treats as
// retryable against a lower-capability endpoint.
const APICodePlanUnavailable = 1006

// APIError is the typed failure returned by the CoinMarketCap client.
// Kind is always set; StatusCode, Code, Message and Err are populated
// per kind.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Code       int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch e.Kind {
	case ErrKindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case ErrKindDecoding:
		return fmt.Sprintf("failed to parse response: %v", e.Err)
	case ErrKindNoData:
		return "no data received from server"
	case ErrKindInvalidResponse:
		return "invalid response from server"
	case ErrKindHTTPStatus:
		return fmt.Sprintf("HTTP error: %d", e.StatusCode)
	case ErrKindAPI:
		return fmt.Sprintf("API error (%d): %s", e.Code, e.Message)
	default:
		return "unknown error"
	}
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func NewNetworkError(err error) *APIError {
	return &APIError{Kind: ErrKindNetwork, Err: err}
}

func NewDecodingError(err error) *APIError {
	return &APIError{Kind: ErrKindDecoding, Err: err}
}

func NewNoDataError() *APIError {
	return &APIError{Kind: ErrKindNoData}
}

func NewInvalidResponseError() *APIError {
	return &APIError{Kind: ErrKindInvalidResponse}
}

func NewHTTPStatusError(statusCode int) *APIError {
	return &APIError{Kind: ErrKindHTTPStatus, StatusCode: statusCode}
}

func NewAPIError(code int, message string) *APIError {
	return &APIError{Kind: ErrKindAPI, Code: code, Message: message}
}

// IsPlanLimited reports whether err is the API failure that signals the
// caller's plan lacks access to the requested endpoint.
func IsPlanLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) &&
		apiErr.Kind == ErrKindAPI &&
		apiErr.Code == APICodePlanUnavailable
}

// IsNoData reports whether err is the "success envelope but empty body"
// failure.
func IsNoData(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == ErrKindNoData
}
