package entity

import "time"

// SearchQuery is a validated itinerary search request
type SearchQuery struct {
	Origin      string
	Destination string
	Date        time.Time
}

// SearchStats counts the work done by one search
type SearchStats struct {
	DaysScanned         int
	RepositoryQueries   int
	DiscardedCandidates int
	Direct              int
	Connections         int
}

// Add accumulates another set of counters
func (s *SearchStats) Add(other SearchStats) {
	s.DaysScanned += other.DaysScanned
	s.RepositoryQueries += other.RepositoryQueries
	s.DiscardedCandidates += other.DiscardedCandidates
	s.Direct += other.Direct
	s.Connections += other.Connections
}

// SearchResult is the outcome of a lookahead search
type SearchResult struct {
	Query          SearchQuery
	FoundDate      time.Time
	DateWasChanged bool
	Itineraries    []Itinerary
	Stats          SearchStats
}
