package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/pkg/utils"
)

var errStoreDown = errors.New("connection refused")

// fakeLocations implements LocationRepository over a fixed slice
type fakeLocations struct {
	locations []entity.Location
	err       error
}

func (f *fakeLocations) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.locations {
		if l.Code == code {
			loc := l
			return &loc, nil
		}
	}
	return nil, fmt.Errorf("location %s: %w", code, entity.ErrNotFound)
}

func (f *fakeLocations) List(ctx context.Context) ([]entity.Location, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func (f *fakeLocations) ListHierarchy(ctx context.Context) ([]entity.LocationLink, error) {
	if f.err != nil {
		return nil, f.err
	}
	links := make([]entity.LocationLink, 0, len(f.locations))
	for _, l := range f.locations {
		links = append(links, entity.LocationLink{Code: l.Code, ParentCode: l.ParentCode})
	}
	return links, nil
}

// fakeSchedules implements ScheduleRepository with the same set-membership
// semantics as the SQL implementation
type fakeSchedules struct {
	routes   []entity.Route
	sailings []entity.Sailing
	err      error
	queries  atomic.Int64
	weekdays sync.Map // weekday -> true, records which days were queried
}

func (f *fakeSchedules) RecurringRoutesActiveOn(ctx context.Context, origins, destinations []string, weekday int) ([]entity.Route, error) {
	f.queries.Add(1)
	f.weekdays.Store(weekday, true)
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Route
	for _, r := range f.routes {
		if r.IsActive && r.RunsOn(weekday) && inCodes(r.Origin.Code, origins) && inCodes(r.Destination.Code, destinations) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSchedules) SailingsOn(ctx context.Context, origins, destinations []string, date time.Time) ([]entity.Sailing, error) {
	f.queries.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Sailing
	for _, s := range f.sailings {
		if s.Date.Equal(date) && inCodes(s.Route.Origin.Code, origins) && inCodes(s.Route.Destination.Code, destinations) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSchedules) ListActiveRoutes(ctx context.Context, origin, destination string) ([]entity.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Route
	for _, r := range f.routes {
		if !r.IsActive {
			continue
		}
		if origin != "" && r.Origin.Code != origin {
			continue
		}
		if destination != "" && r.Destination.Code != destination {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func inCodes(code string, codes []string) bool {
	if len(codes) == 0 {
		return true
	}
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

type fakeSearchLogs struct {
	mu   sync.Mutex
	logs []entity.SearchLog
	err  error
}

func (f *fakeSearchLogs) Save(ctx context.Context, log *entity.SearchLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.logs = append(f.logs, *log)
	return nil
}

// fixtures

var (
	carrierAA  = entity.Carrier{ID: 1, Code: "AA", Name: "American Airlines", Kind: entity.CarrierAir}
	carrierWIA = entity.Carrier{ID: 2, Code: "WM", Name: "Winair", Kind: entity.CarrierAir}
	carrierLXI = entity.Carrier{ID: 3, Code: "LXI", Name: "L'Express des Iles", Kind: entity.CarrierSea}
)

func loc(code, city, parent string) entity.Location {
	return entity.Location{Code: code, Name: code + " terminal", City: city, ParentCode: parent}
}

func clock(value string) *entity.ClockTime {
	t, err := entity.ParseClockTime(value)
	if err != nil {
		panic(err)
	}
	return &t
}

func minutes(n int) *int {
	return &n
}

func date(value string) time.Time {
	d, err := utils.ParseISODate(value)
	if err != nil {
		panic(err)
	}
	return d
}

type routeOpt func(*entity.Route)

func newRoute(id uint, origin, destination entity.Location, carrier entity.Carrier, opts ...routeOpt) entity.Route {
	r := entity.Route{
		ID:              id,
		Origin:          origin,
		Destination:     destination,
		Carrier:         carrier,
		DaysOfOperation: entity.AllDays,
		IsActive:        true,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func departs(v string) routeOpt   { return func(r *entity.Route) { r.DepartureTime = clock(v) } }
func arrives(v string) routeOpt   { return func(r *entity.Route) { r.ArrivalTime = clock(v) } }
func lasts(m int) routeOpt        { return func(r *entity.Route) { r.DurationMinutes = minutes(m) } }
func runsOn(mask string) routeOpt { return func(r *entity.Route) { r.DaysOfOperation = mask } }
func inactive() routeOpt          { return func(r *entity.Route) { r.IsActive = false } }

func newSailing(id uint, route entity.Route, day, dep, arr string, duration int) entity.Sailing {
	return entity.Sailing{
		ID:              id,
		Route:           route,
		Date:            date(day),
		DepartureTime:   *clock(dep),
		ArrivalTime:     *clock(arr),
		DurationMinutes: duration,
	}
}
