package utils

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// NormalizeCode trims and upper-cases a location or carrier code
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseISODate parses a YYYY-MM-DD calendar date at UTC midnight
func ParseISODate(value string) (time.Time, error) {
	return time.Parse(DATE_LAYOUT, strings.TrimSpace(value))
}

// FormatISODate renders a date as YYYY-MM-DD
func FormatISODate(t time.Time) string {
	return t.Format(DATE_LAYOUT)
}

// WeekdayMarker converts a date to its operation-mask marker, 1=Monday .. 7=Sunday
func WeekdayMarker(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// FormatHoursMinutes renders a duration as "2h 05m"
func FormatHoursMinutes(d time.Duration) string {
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// FormatLayover describes a layover at a hub
func FormatLayover(gap time.Duration, hubCode, hubCity string) string {
	hub := hubCode
	if hubCity != "" {
		hub = fmt.Sprintf("%s (%s)", hubCity, hubCode)
	}
	return fmt.Sprintf(LAYOVER_TEMPLATE, FormatHoursMinutes(gap), hub)
}

// StringSet is an unordered set of strings
type StringSet map[string]struct{}

// NewStringSet builds a set from the given items
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add inserts an item
func (s StringSet) Add(item string) {
	s[item] = struct{}{}
}

// Has reports whether item is in the set
func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the items in ascending order
func (s StringSet) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}
