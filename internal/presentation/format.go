package presentation

import (
	"errors"
	"fmt"
	"time"

	"github.com/coinlens/cls/internal/domain"
)

// NotAvailable is the display sentinel for missing volume and date data.
const NotAvailable = "N/A"

const displayDateLayout = "Jan 2, 2006"

// FormatVolume renders a 24h spot volume in abbreviated USD units with two
// decimals. A volume of exactly zero means "no data" and renders as the
// sentinel, not as $0.00.
func FormatVolume(volume float64) string {
	switch {
	case volume == 0:
		return NotAvailable
	case volume >= 1_000_000_000:
		return fmt.Sprintf("$%.2fB", volume/1_000_000_000)
	case volume >= 1_000_000:
		return fmt.Sprintf("$%.2fM", volume/1_000_000)
	case volume >= 1_000:
		return fmt.Sprintf("$%.2fK", volume/1_000)
	default:
		return fmt.Sprintf("$%.2f", volume)
	}
}

// FormatDate renders a launch date in medium style. The zero time marks
// missing data, and a date in the future means the upstream sent garbage;
// both render as the sentinel.
func FormatDate(date time.Time) string {
	if date.IsZero() {
		return NotAvailable
	}
	if date.After(time.Now()) {
		return NotAvailable
	}
	return date.Format(displayDateLayout)
}

// FormatPrice renders an optional per-currency USD price.
func FormatPrice(price *float64) string {
	if price == nil {
		return NotAvailable
	}
	return fmt.Sprintf("$%.2f", *price)
}

// ErrorMessage converts any failure into a human-readable sentence. Typed API
// failures each carry a distinct message; anything else gets the generic one.
func ErrorMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return "Something went wrong. Please try again."
}
