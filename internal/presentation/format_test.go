package presentation

import (
	"errors"
	"testing"
	"time"

	"github.com/coinlens/cls/internal/domain"
)

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   string
	}{
		{"billions", 1_500_000_000.0, "$1.50B"},
		{"millions", 2_500_000.0, "$2.50M"},
		{"thousands", 3_500.0, "$3.50K"},
		{"plain dollars", 999.99, "$999.99"},
		{"zero is the no-data sentinel", 0.0, "N/A"},
		{"boundary billion", 1_000_000_000.0, "$1.00B"},
		{"boundary million", 1_000_000.0, "$1.00M"},
		{"boundary thousand", 1_000.0, "$1.00K"},
		{"end-to-end listing volume", 1234567.0, "$1.23M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatVolume(tt.volume); got != tt.want {
				t.Errorf("FormatVolume(%v) = %q, want %q", tt.volume, got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	t.Run("zero-time sentinel renders as N/A", func(t *testing.T) {
		if got := FormatDate(time.Time{}); got != NotAvailable {
			t.Errorf("got %q", got)
		}
	})

	t.Run("future date renders as N/A", func(t *testing.T) {
		if got := FormatDate(time.Now().Add(24 * time.Hour)); got != NotAvailable {
			t.Errorf("got %q", got)
		}
	})

	t.Run("valid past date renders in medium style", func(t *testing.T) {
		got := FormatDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
		if got != "Jan 1, 2020" {
			t.Errorf("got %q, want %q", got, "Jan 1, 2020")
		}
	})
}

func TestFormatPrice(t *testing.T) {
	price := 43000.5
	if got := FormatPrice(&price); got != "$43000.50" {
		t.Errorf("got %q", got)
	}
	if got := FormatPrice(nil); got != NotAvailable {
		t.Errorf("got %q", got)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"api failure", domain.NewAPIError(1006, "plan limited"), "API error (1006): plan limited"},
		{"no data", domain.NewNoDataError(), "no data received from server"},
		{"http status", domain.NewHTTPStatusError(503), "HTTP error: 503"},
		{"unrecognized failure gets the generic message", errors.New("boom"), "Something went wrong. Please try again."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
