package entity

import "fmt"

// LegKind tells which schedule source produced a leg
type LegKind string

const (
	LegKindRoute   LegKind = "route"
	LegKindSailing LegKind = "sailing"
)

// Leg is one unbroken segment of travel. It is implemented only by
// RouteLeg and SailingLeg.
type Leg interface {
	Kind() LegKind
	Key() string
	RouteID() uint
	Carrier() Carrier
	Origin() Location
	Destination() Location
	DepartureTime() *ClockTime
	ArrivalTime() *ClockTime
	// DurationMinutes returns the leg duration and false when it cannot be known
	DurationMinutes() (int, bool)

	isLeg()
}

// RouteLeg is an occurrence of a recurring route on the searched day
type RouteLeg struct {
	Route Route
}

// NewRouteLeg wraps a route as a leg
func NewRouteLeg(route Route) RouteLeg {
	return RouteLeg{Route: route}
}

func (l RouteLeg) Kind() LegKind             { return LegKindRoute }
func (l RouteLeg) Key() string               { return fmt.Sprintf("route:%d", l.Route.ID) }
func (l RouteLeg) RouteID() uint             { return l.Route.ID }
func (l RouteLeg) Carrier() Carrier          { return l.Route.Carrier }
func (l RouteLeg) Origin() Location          { return l.Route.Origin }
func (l RouteLeg) Destination() Location     { return l.Route.Destination }
func (l RouteLeg) DepartureTime() *ClockTime { return l.Route.DepartureTime }
func (l RouteLeg) ArrivalTime() *ClockTime   { return l.Route.ArrivalTime }
func (l RouteLeg) isLeg()                    {}

// DurationMinutes prefers the nominal duration and falls back to the clock times
func (l RouteLeg) DurationMinutes() (int, bool) {
	if l.Route.DurationMinutes != nil {
		return *l.Route.DurationMinutes, true
	}
	if l.Route.DepartureTime == nil || l.Route.ArrivalTime == nil {
		return 0, false
	}
	return clockSpanMinutes(*l.Route.DepartureTime, *l.Route.ArrivalTime), true
}

// SailingLeg is a dated sailing
type SailingLeg struct {
	Sailing Sailing
}

// NewSailingLeg wraps a sailing as a leg
func NewSailingLeg(sailing Sailing) SailingLeg {
	return SailingLeg{Sailing: sailing}
}

func (l SailingLeg) Kind() LegKind         { return LegKindSailing }
func (l SailingLeg) Key() string           { return fmt.Sprintf("sailing:%d", l.Sailing.ID) }
func (l SailingLeg) RouteID() uint         { return l.Sailing.Route.ID }
func (l SailingLeg) Carrier() Carrier      { return l.Sailing.Route.Carrier }
func (l SailingLeg) Origin() Location      { return l.Sailing.Route.Origin }
func (l SailingLeg) Destination() Location { return l.Sailing.Route.Destination }
func (l SailingLeg) isLeg()                {}

func (l SailingLeg) DepartureTime() *ClockTime {
	return l.Sailing.DepartureTime.Ptr()
}

func (l SailingLeg) ArrivalTime() *ClockTime {
	return l.Sailing.ArrivalTime.Ptr()
}

func (l SailingLeg) DurationMinutes() (int, bool) {
	if l.Sailing.DurationMinutes > 0 {
		return l.Sailing.DurationMinutes, true
	}
	return clockSpanMinutes(l.Sailing.DepartureTime, l.Sailing.ArrivalTime), true
}

// clockSpanMinutes measures departure to arrival, wrapping past midnight for
// overnight services.
func clockSpanMinutes(departure, arrival ClockTime) int {
	span := (arrival.Seconds() - departure.Seconds() + SecondsPerDay) % SecondsPerDay
	return span / 60
}
