package usecase

import "time"

// Connection window defaults. The floor depends on the mode of the second leg:
// reaching a ferry needs a ground transfer from the airport.
const (
	DefaultMinFlightConnection = 1 * time.Hour
	DefaultMinFerryConnection  = 2 * time.Hour
	DefaultMaxConnection       = 6 * time.Hour
	DefaultLookaheadDays       = 7
)

// ConnectionRules bound the layover between two legs. A gap must be strictly
// greater than the floor and at most MaxConnection.
type ConnectionRules struct {
	MinFlightConnection time.Duration
	MinFerryConnection  time.Duration
	MaxConnection       time.Duration
}

// SearchOptions configures an ItinerarySearch
type SearchOptions struct {
	LookaheadDays int
	Rules         ConnectionRules
}

// DefaultSearchOptions returns the standard lookahead window and connection rules
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		LookaheadDays: DefaultLookaheadDays,
		Rules: ConnectionRules{
			MinFlightConnection: DefaultMinFlightConnection,
			MinFerryConnection:  DefaultMinFerryConnection,
			MaxConnection:       DefaultMaxConnection,
		},
	}
}
