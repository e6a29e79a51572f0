package timeutil

import (
	"testing"
	"time"
)

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"with milliseconds", "2020-01-01T00:00:00.000Z", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"without milliseconds", "2020-01-01T00:00:00Z", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"fractional seconds", "2021-06-15T12:30:45.123456Z", time.Date(2021, 6, 15, 12, 30, 45, 123456000, time.UTC), true},
		{"numeric offset", "2021-06-15T12:30:45+02:00", time.Date(2021, 6, 15, 10, 30, 45, 0, time.UTC), true},
		{"empty string", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
		{"date only", "2020-01-01", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseISO8601(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseISO8601(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseISO8601(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseISO8601_MillisecondAndSecondPrecisionAgree(t *testing.T) {
	millis, ok := ParseISO8601("2020-01-01T00:00:00.000Z")
	if !ok {
		t.Fatal("millisecond form did not parse")
	}
	seconds, ok := ParseISO8601("2020-01-01T00:00:00Z")
	if !ok {
		t.Fatal("second form did not parse")
	}
	if !millis.Equal(seconds) {
		t.Errorf("precision variants disagree: %v vs %v", millis, seconds)
	}
}
