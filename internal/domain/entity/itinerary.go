package entity

import "time"

// Layover describes the stop between the two legs of a connection
type Layover struct {
	Hub Location
	Gap time.Duration
}

// Itinerary is one or two legs presented as a single travel option
type Itinerary struct {
	Legs    []Leg
	Layover *Layover
}

// IsConnection reports whether the itinerary has more than one leg
func (it Itinerary) IsConnection() bool {
	return len(it.Legs) > 1
}

// First returns the first leg
func (it Itinerary) First() Leg {
	return it.Legs[0]
}

// TotalDurationMinutes sums leg durations and the layover gap. The second
// return value is false if any leg has no known duration.
func (it Itinerary) TotalDurationMinutes() (int, bool) {
	total := 0
	for _, leg := range it.Legs {
		d, ok := leg.DurationMinutes()
		if !ok {
			return 0, false
		}
		total += d
	}
	if it.Layover != nil {
		total += int(it.Layover.Gap / time.Minute)
	}
	return total, true
}

// Key identifies the itinerary by its legs
func (it Itinerary) Key() string {
	key := ""
	for i, leg := range it.Legs {
		if i > 0 {
			key += ">"
		}
		key += leg.Key()
	}
	return key
}
