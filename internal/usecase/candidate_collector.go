package usecase

import (
	"context"
	"fmt"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/metrics"
	"itinerary-service/pkg/utils"

	"golang.org/x/sync/errgroup"
)

// DayCandidates holds every leg that may take part in an itinerary on one date
type DayCandidates struct {
	Date      time.Time
	Direct    []entity.Leg
	FirstLegs []entity.Leg
	// SecondLegs indexes legs ending at the destination by their origin code
	SecondLegs map[string][]entity.Leg
	Queries    int
}

// CandidateCollector gathers direct legs and connection leg pools for a date
type CandidateCollector struct {
	schedules repository.ScheduleRepository
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewCandidateCollector creates a new candidate collector
func NewCandidateCollector(schedules repository.ScheduleRepository, logger logger.Logger, m *metrics.Metrics) *CandidateCollector {
	return &CandidateCollector{
		schedules: schedules,
		logger:    logger,
		metrics:   m,
	}
}

// Collect reads the schedule store for date. The three reads are independent
// and run in parallel; any failure fails the whole date.
//
// Direct legs are carved out of the leg pools instead of being read twice:
// routes leaving the origins that land on the destinations, and sailings
// landing on the destinations that leave the origins.
func (c *CandidateCollector) Collect(ctx context.Context, date time.Time, origins, destinations utils.StringSet) (*DayCandidates, error) {
	weekday := utils.WeekdayMarker(date)
	originCodes := origins.Sorted()
	destinationCodes := destinations.Sorted()

	var (
		outbound []entity.Route
		inbound  []entity.Route
		sailings []entity.Sailing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		routes, err := c.schedules.RecurringRoutesActiveOn(gctx, originCodes, nil, weekday)
		if err != nil {
			c.metrics.RepositoryError("recurring_routes_outbound")
			return fmt.Errorf("%w: outbound routes: %w", entity.ErrRepositoryUnavailable, err)
		}
		outbound = routes
		return nil
	})
	g.Go(func() error {
		routes, err := c.schedules.RecurringRoutesActiveOn(gctx, nil, destinationCodes, weekday)
		if err != nil {
			c.metrics.RepositoryError("recurring_routes_inbound")
			return fmt.Errorf("%w: inbound routes: %w", entity.ErrRepositoryUnavailable, err)
		}
		inbound = routes
		return nil
	})
	g.Go(func() error {
		found, err := c.schedules.SailingsOn(gctx, nil, destinationCodes, date)
		if err != nil {
			c.metrics.RepositoryError("sailings_on")
			return fmt.Errorf("%w: sailings: %w", entity.ErrRepositoryUnavailable, err)
		}
		sailings = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := &DayCandidates{
		Date:       date,
		SecondLegs: make(map[string][]entity.Leg),
		Queries:    3,
	}

	for _, route := range outbound {
		dest := utils.NormalizeCode(route.Destination.Code)
		switch {
		case destinations.Has(dest):
			candidates.Direct = append(candidates.Direct, entity.NewRouteLeg(route))
		case origins.Has(dest):
			// transfers between aliases of the origin never lead anywhere
		default:
			candidates.FirstLegs = append(candidates.FirstLegs, entity.NewRouteLeg(route))
		}
	}

	for _, s := range sailings {
		if origins.Has(utils.NormalizeCode(s.Route.Origin.Code)) {
			candidates.Direct = append(candidates.Direct, entity.NewSailingLeg(s))
			continue
		}
		candidates.addSecondLeg(entity.NewSailingLeg(s))
	}

	for _, route := range inbound {
		if origins.Has(utils.NormalizeCode(route.Origin.Code)) {
			continue
		}
		candidates.addSecondLeg(entity.NewRouteLeg(route))
	}

	c.logger.Debug("Collected candidates",
		"date", utils.FormatISODate(date),
		"weekday", weekday,
		"direct", len(candidates.Direct),
		"firstLegs", len(candidates.FirstLegs),
		"secondLegHubs", len(candidates.SecondLegs))

	return candidates, nil
}

func (d *DayCandidates) addSecondLeg(leg entity.Leg) {
	hub := utils.NormalizeCode(leg.Origin().Code)
	d.SecondLegs[hub] = append(d.SecondLegs[hub], leg)
}
