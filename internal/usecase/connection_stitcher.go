package usecase

import (
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"
	"itinerary-service/pkg/utils"
)

// Reasons a connection candidate is dropped for incomplete data
const (
	DiscardMissingArrival   = "missing_arrival_time"
	DiscardMissingDeparture = "missing_departure_time"
)

// ConnectionStitcher joins a first leg with second legs leaving its hub
type ConnectionStitcher struct {
	rules   ConnectionRules
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewConnectionStitcher creates a new connection stitcher
func NewConnectionStitcher(rules ConnectionRules, logger logger.Logger, m *metrics.Metrics) *ConnectionStitcher {
	return &ConnectionStitcher{
		rules:   rules,
		logger:  logger,
		metrics: m,
	}
}

// Stitch pairs first with every compatible leg in pool whose origin is one of
// hubAliases. Gaps are measured on same-day wall-clock seconds: a second leg
// departing after midnight is never matched to a late first leg.
// Legs without a known duration are still paired; the itinerary's total is
// then unknown. It returns the itineraries and the number of candidates
// discarded for missing clock times.
func (s *ConnectionStitcher) Stitch(first entity.Leg, hubAliases utils.StringSet, pool map[string][]entity.Leg) ([]entity.Itinerary, int) {
	arrival := first.ArrivalTime()
	if arrival == nil {
		s.discard(first, DiscardMissingArrival)
		return nil, 1
	}

	var (
		itineraries []entity.Itinerary
		discarded   int
	)
	for _, hub := range hubAliases.Sorted() {
		for _, second := range pool[hub] {
			departure := second.DepartureTime()
			if departure == nil {
				s.discard(second, DiscardMissingDeparture)
				discarded++
				continue
			}

			gap := time.Duration(departure.Seconds()-arrival.Seconds()) * time.Second
			if !s.Accepts(gap, second.Carrier().Kind) {
				continue
			}

			itineraries = append(itineraries, entity.Itinerary{
				Legs:    []entity.Leg{first, second},
				Layover: &entity.Layover{Hub: first.Destination(), Gap: gap},
			})
		}
	}

	return itineraries, discarded
}

// Accepts applies the connection window for a second leg of the given kind
func (s *ConnectionStitcher) Accepts(gap time.Duration, secondKind entity.CarrierKind) bool {
	if gap <= 0 || gap > s.rules.MaxConnection {
		return false
	}
	floor := s.rules.MinFlightConnection
	if secondKind.IsSea() {
		floor = s.rules.MinFerryConnection
	}
	return gap > floor
}

func (s *ConnectionStitcher) discard(leg entity.Leg, reason string) {
	s.logger.Warn("Discarding connection candidate",
		"leg", leg.Key(),
		"origin", leg.Origin().Code,
		"destination", leg.Destination().Code,
		"reason", reason)
	s.metrics.DiscardCandidate(reason)
}

// SanitizePool drops second legs that can never be stitched, so each anomaly
// is reported once per day rather than once per pairing.
func (s *ConnectionStitcher) SanitizePool(pool map[string][]entity.Leg) (map[string][]entity.Leg, int) {
	clean := make(map[string][]entity.Leg, len(pool))
	discarded := 0
	for hub, legs := range pool {
		for _, leg := range legs {
			if leg.DepartureTime() == nil {
				s.discard(leg, DiscardMissingDeparture)
				discarded++
				continue
			}
			clean[hub] = append(clean[hub], leg)
		}
	}
	return clean, discarded
}
