package entity

import "time"

// Sailing is a date-specific departure of a route, typically a ferry
type Sailing struct {
	ID              uint
	Route           Route
	Date            time.Time
	DepartureTime   ClockTime
	ArrivalTime     ClockTime
	DurationMinutes int
	Price           string
}
