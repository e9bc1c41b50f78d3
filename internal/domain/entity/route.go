package entity

import (
	"strconv"
	"strings"
	"time"
)

// AllDays is the operation mask of a route running every day
const AllDays = "1234567"

// Route represents a weekly recurring service between two locations
type Route struct {
	ID              uint
	Origin          Location
	Destination     Location
	Carrier         Carrier
	DaysOfOperation string // weekday markers, 1=Monday .. 7=Sunday
	IsActive        bool
	DurationMinutes *int
	DepartureTime   *ClockTime
	ArrivalTime     *ClockTime
	UpdatedAt       time.Time
}

// RunsOn reports whether the operation mask contains the weekday marker
func (r Route) RunsOn(marker int) bool {
	if marker < 1 || marker > 7 {
		return false
	}
	return strings.Contains(r.DaysOfOperation, strconv.Itoa(marker))
}
