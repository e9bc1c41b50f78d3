package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// SecondsPerDay is the length of a wall-clock day
const SecondsPerDay = 24 * 60 * 60

// ClockTime is a wall-clock time of day stored as seconds since midnight.
// It carries no date, so comparisons never roll over midnight.
type ClockTime int

// NewClockTime builds a ClockTime from its components
func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*3600 + minute*60 + second)
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS"
func ParseClockTime(value string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock time %q", value)
	}

	limits := []int{23, 59, 59}
	fields := make([]int, 3)
	for i, part := range parts {
		// Postgres renders fractional seconds for time columns ("08:00:00.000000")
		if i == 2 {
			part, _, _ = strings.Cut(part, ".")
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > limits[i] {
			return 0, fmt.Errorf("invalid clock time %q", value)
		}
		fields[i] = n
	}

	return NewClockTime(fields[0], fields[1], fields[2]), nil
}

// Seconds returns the number of seconds since midnight
func (c ClockTime) Seconds() int {
	return int(c)
}

// String renders the time as "HH:MM"
func (c ClockTime) String() string {
	s := int(c)
	return fmt.Sprintf("%02d:%02d", s/3600, (s%3600)/60)
}

// Ptr returns a pointer to a copy of c
func (c ClockTime) Ptr() *ClockTime {
	return &c
}
