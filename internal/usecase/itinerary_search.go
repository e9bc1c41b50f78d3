package usecase

import (
	"context"
	"sort"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"
	"itinerary-service/pkg/utils"
)

// ItinerarySearch answers itinerary queries, searching forward day by day
// until a date with any itinerary is found
type ItinerarySearch struct {
	locationRepo  repository.LocationRepository
	searchLogRepo repository.SearchLogRepository
	collector     *CandidateCollector
	stitcher      *ConnectionStitcher
	lookaheadDays int
	logger        logger.Logger
	metrics       *metrics.Metrics
}

// NewItinerarySearch creates a new itinerary search. searchLogRepo may be nil.
func NewItinerarySearch(
	locationRepo repository.LocationRepository,
	scheduleRepo repository.ScheduleRepository,
	searchLogRepo repository.SearchLogRepository,
	opts SearchOptions,
	logger logger.Logger,
	m *metrics.Metrics,
) *ItinerarySearch {
	if opts.LookaheadDays < 1 {
		opts.LookaheadDays = DefaultLookaheadDays
	}

	return &ItinerarySearch{
		locationRepo:  locationRepo,
		searchLogRepo: searchLogRepo,
		collector:     NewCandidateCollector(scheduleRepo, logger, m),
		stitcher:      NewConnectionStitcher(opts.Rules, logger, m),
		lookaheadDays: opts.LookaheadDays,
		logger:        logger,
		metrics:       m,
	}
}

// Search runs the lookahead over [query.Date, query.Date+lookahead). The first
// date yielding any itinerary wins; later dates are never consulted.
func (s *ItinerarySearch) Search(ctx context.Context, query entity.SearchQuery) (*entity.SearchResult, error) {
	started := time.Now()
	log := s.logger.With("origin", query.Origin, "destination", query.Destination, "date", utils.FormatISODate(query.Date))

	graph, err := LoadAliasGraph(ctx, s.locationRepo)
	if err != nil {
		s.metrics.RepositoryError("location_hierarchy")
		s.metrics.ObserveSearch(metrics.OutcomeError, time.Since(started).Seconds())
		log.Error("Failed to load location hierarchy", "error", err)
		return nil, err
	}
	origins := graph.Resolve(query.Origin)
	destinations := graph.Resolve(query.Destination)

	result := &entity.SearchResult{
		Query:     query,
		FoundDate: query.Date,
		Stats:     entity.SearchStats{RepositoryQueries: 1},
	}

	for i := 0; i < s.lookaheadDays; i++ {
		date := query.Date.AddDate(0, 0, i)

		itineraries, stats, err := s.SearchDay(ctx, date, graph, origins, destinations)
		result.Stats.Add(stats)
		if err != nil {
			s.metrics.ObserveSearch(metrics.OutcomeError, time.Since(started).Seconds())
			log.Error("Search failed", "searchedDate", utils.FormatISODate(date), "error", err)
			return nil, err
		}

		if len(itineraries) > 0 {
			result.Itineraries = itineraries
			result.FoundDate = date
			result.DateWasChanged = i > 0
			break
		}
	}

	outcome := metrics.OutcomeEmpty
	switch {
	case result.DateWasChanged:
		outcome = metrics.OutcomeShifted
	case len(result.Itineraries) > 0:
		outcome = metrics.OutcomeExact
	}
	elapsed := time.Since(started)
	s.metrics.ObserveSearch(outcome, elapsed.Seconds())

	log.Info("Search completed",
		"outcome", outcome,
		"foundDate", utils.FormatISODate(result.FoundDate),
		"results", len(result.Itineraries),
		"direct", result.Stats.Direct,
		"connections", result.Stats.Connections,
		"daysScanned", result.Stats.DaysScanned,
		"queries", result.Stats.RepositoryQueries,
		"discarded", result.Stats.DiscardedCandidates)

	s.saveSearchLog(ctx, result, elapsed)

	return result, nil
}

// SearchDay builds every direct and connecting itinerary on one date, ranked.
// origins and destinations are the alias sets of the queried codes.
func (s *ItinerarySearch) SearchDay(ctx context.Context, date time.Time, graph *AliasGraph, origins, destinations utils.StringSet) ([]entity.Itinerary, entity.SearchStats, error) {
	stats := entity.SearchStats{DaysScanned: 1}

	candidates, err := s.collector.Collect(ctx, date, origins, destinations)
	if err != nil {
		return nil, stats, err
	}
	stats.RepositoryQueries = candidates.Queries

	var direct []entity.Itinerary
	for _, leg := range candidates.Direct {
		direct = append(direct, entity.Itinerary{Legs: []entity.Leg{leg}})
	}

	pool, discarded := s.stitcher.SanitizePool(candidates.SecondLegs)
	stats.DiscardedCandidates += discarded

	var connections []entity.Itinerary
	hubAliases := make(map[string]utils.StringSet)
	for _, first := range candidates.FirstLegs {
		hub := utils.NormalizeCode(first.Destination().Code)
		aliases, ok := hubAliases[hub]
		if !ok {
			aliases = graph.Resolve(hub)
			hubAliases[hub] = aliases
		}

		stitched, dropped := s.stitcher.Stitch(first, aliases, pool)
		stats.DiscardedCandidates += dropped
		connections = append(connections, stitched...)
	}

	stats.Direct = len(direct)
	stats.Connections = len(connections)

	rankItineraries(direct)
	rankItineraries(connections)
	return append(direct, connections...), stats, nil
}

func (s *ItinerarySearch) saveSearchLog(ctx context.Context, result *entity.SearchResult, elapsed time.Duration) {
	if s.searchLogRepo == nil {
		return
	}

	entry := &entity.SearchLog{
		Origin:         result.Query.Origin,
		Destination:    result.Query.Destination,
		SearchDate:     utils.FormatISODate(result.Query.Date),
		FoundDate:      utils.FormatISODate(result.FoundDate),
		DateWasChanged: result.DateWasChanged,
		ResultCount:    len(result.Itineraries),
		Direct:         result.Stats.Direct,
		Connections:    result.Stats.Connections,
		DaysScanned:    result.Stats.DaysScanned,
		DurationMs:     elapsed.Milliseconds(),
	}
	if err := s.searchLogRepo.Save(ctx, entry); err != nil {
		s.logger.Warn("Failed to save search log", "error", err)
	}
}

// rankItineraries orders by departure time (unknown last), then total
// duration, carrier code and leg identity
func rankItineraries(items []entity.Itinerary) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		da, db := a.First().DepartureTime(), b.First().DepartureTime()
		switch {
		case da != nil && db == nil:
			return true
		case da == nil && db != nil:
			return false
		case da != nil && db != nil && *da != *db:
			return *da < *db
		}

		ta, okA := a.TotalDurationMinutes()
		tb, okB := b.TotalDurationMinutes()
		if okA != okB {
			return okA
		}
		if ta != tb {
			return ta < tb
		}

		ca, cb := a.First().Carrier().Code, b.First().Carrier().Code
		if ca != cb {
			return ca < cb
		}
		return a.Key() < b.Key()
	})
}
