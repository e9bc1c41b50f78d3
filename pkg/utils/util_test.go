package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestWeekdayMarker(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2024-01-01", 1}, // Monday
		{"2024-01-03", 3},
		{"2024-01-06", 6},
		{"2024-01-07", 7}, // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			d, err := ParseISODate(tt.date)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := WeekdayMarker(d); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseISODateRejectsGarbage(t *testing.T) {
	for _, value := range []string{"", "2024-13-01", "01/02/2024", "2024-1-1"} {
		if _, err := ParseISODate(value); err == nil {
			t.Errorf("expected error for %q", value)
		}
	}
}

func TestFormatLayover(t *testing.T) {
	tests := []struct {
		name string
		gap  time.Duration
		code string
		city string
		want string
	}{
		{"with city", 2 * time.Hour, "PTP", "Pointe-à-Pitre", "2h 00m layover in Pointe-à-Pitre (PTP)"},
		{"without city", 95 * time.Minute, "SJU", "", "1h 35m layover in SJU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLayover(tt.gap, tt.code, tt.city); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStringSet(t *testing.T) {
	s := NewStringSet("DOM", "DMROS", "DOM")
	if len(s) != 2 {
		t.Fatalf("expected 2 items, got %d", len(s))
	}
	if !s.Has("DMROS") || s.Has("PTP") {
		t.Error("unexpected membership")
	}
	if got := s.Sorted(); !reflect.DeepEqual(got, []string{"DMROS", "DOM"}) {
		t.Errorf("unexpected sorted items %v", got)
	}
}

func TestNormalizeCode(t *testing.T) {
	if got := NormalizeCode("  dmros "); got != "DMROS" {
		t.Errorf("expected DMROS, got %q", got)
	}
}
