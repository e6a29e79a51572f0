package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"network", NewNetworkError(errors.New("dial tcp: timeout")), "network error: dial tcp: timeout"},
		{"decoding", NewDecodingError(errors.New("unexpected EOF")), "failed to parse response: unexpected EOF"},
		{"no data", NewNoDataError(), "no data received from server"},
		{"invalid response", NewInvalidResponseError(), "invalid response from server"},
		{"http status", NewHTTPStatusError(503), "HTTP error: 503"},
		{"api", NewAPIError(1002, "API key missing."), "API error (1002): API key missing."},
	}

	seen := map[string]string{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if prev, dup := seen[tt.err.Error()]; dup {
				t.Errorf("message %q duplicates case %q", tt.err.Error(), prev)
			}
			seen[tt.err.Error()] = tt.name
		})
	}
}

func TestIsPlanLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"code 1006", NewAPIError(1006, "Your plan doesn't support this endpoint"), true},
		{"wrapped code 1006", fmt.Errorf("fetch: %w", NewAPIError(1006, "nope")), true},
		{"other api code", NewAPIError(1002, "API key missing."), false},
		{"http status error", NewHTTPStatusError(403), false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPlanLimited(tt.err); got != tt.want {
				t.Errorf("IsPlanLimited() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNoData(t *testing.T) {
	if !IsNoData(NewNoDataError()) {
		t.Error("IsNoData should match the no-data failure")
	}
	if !IsNoData(fmt.Errorf("detail: %w", NewNoDataError())) {
		t.Error("IsNoData should match through wrapping")
	}
	if IsNoData(NewAPIError(1006, "x")) {
		t.Error("IsNoData should not match other kinds")
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError(cause)
	if !errors.Is(err, cause) {
		t.Error("network error should unwrap to its cause")
	}
}
