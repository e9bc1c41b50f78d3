package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/logger"
	"itinerary-service/pkg/utils"

	"gorm.io/gorm"
)

// GormScheduleRepository implements the ScheduleRepository interface
type GormScheduleRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormScheduleRepository creates a new GORM schedule repository
func NewGormScheduleRepository(db *gorm.DB, logger logger.Logger) repository.ScheduleRepository {
	return &GormScheduleRepository{
		db:     db,
		logger: logger,
	}
}

// Routes GORM model for database mapping
type Routes struct {
	ID              uint      `gorm:"primaryKey"`
	OriginID        uint      `gorm:"column:origin_id"`
	Origin          Locations `gorm:"foreignKey:OriginID"`
	DestinationID   uint      `gorm:"column:destination_id"`
	Destination     Locations `gorm:"foreignKey:DestinationID"`
	CarrierID       uint      `gorm:"column:carrier_id"`
	Carrier         Carriers  `gorm:"foreignKey:CarrierID"`
	DaysOfOperation string    `gorm:"column:days_of_operation;size:7"`
	IsActive        bool      `gorm:"column:is_active"`
	DurationMinutes *int      `gorm:"column:duration_minutes"`
	DepartureTime   *string   `gorm:"column:departure_time;type:time"`
	ArrivalTime     *string   `gorm:"column:arrival_time;type:time"`
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (Routes) TableName() string {
	return "core_route"
}

// Sailings GORM model for database mapping
type Sailings struct {
	ID              uint      `gorm:"primaryKey"`
	RouteID         uint      `gorm:"column:route_id"`
	Route           Routes    `gorm:"foreignKey:RouteID"`
	Date            time.Time `gorm:"column:date;type:date"`
	DepartureTime   string    `gorm:"column:departure_time;type:time"`
	ArrivalTime     string    `gorm:"column:arrival_time;type:time"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Price           string    `gorm:"column:price"`
}

// TableName overrides the default table name
func (Sailings) TableName() string {
	return "core_sailing"
}

// RecurringRoutesActiveOn finds active routes between the code sets whose operation mask contains weekday
func (r *GormScheduleRepository) RecurringRoutesActiveOn(ctx context.Context, origins, destinations []string, weekday int) ([]entity.Route, error) {
	var routes []Routes
	query := r.routeScope(ctx, origins, destinations).
		Where("core_route.is_active = ?", true).
		Where("core_route.days_of_operation LIKE ?", "%"+strconv.Itoa(weekday)+"%")

	result := r.preloadRoute(query, "").Order("core_route.id").Find(&routes)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Route, 0, len(routes))
	for _, route := range routes {
		entities = append(entities, r.routeToEntity(route))
	}
	return entities, nil
}

// SailingsOn finds sailings on date whose parent route connects the code sets
func (r *GormScheduleRepository) SailingsOn(ctx context.Context, origins, destinations []string, date time.Time) ([]entity.Sailing, error) {
	routeIDs := r.routeScope(ctx, origins, destinations).Select("core_route.id")

	var sailings []Sailings
	query := r.db.WithContext(ctx).
		Where("core_sailing.date = ?", utils.FormatISODate(date)).
		Where("core_sailing.route_id IN (?)", routeIDs)

	result := r.preloadRoute(query, "Route.").
		Order("core_sailing.departure_time").
		Order("core_sailing.id").
		Find(&sailings)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Sailing, 0, len(sailings))
	for _, sailing := range sailings {
		s, ok := r.sailingToEntity(sailing)
		if !ok {
			continue
		}
		entities = append(entities, s)
	}
	return entities, nil
}

// ListActiveRoutes lists active routes, optionally filtered by origin and destination code
func (r *GormScheduleRepository) ListActiveRoutes(ctx context.Context, origin, destination string) ([]entity.Route, error) {
	query := r.db.WithContext(ctx).Model(&Routes{}).Where("core_route.is_active = ?", true)
	if origin != "" {
		query = query.Where("core_route.origin_id IN (?)", r.locationIDs(ctx).Where("UPPER(code) = ?", strings.ToUpper(origin)))
	}
	if destination != "" {
		query = query.Where("core_route.destination_id IN (?)", r.locationIDs(ctx).Where("UPPER(code) = ?", strings.ToUpper(destination)))
	}

	var routes []Routes
	result := r.preloadRoute(query, "").Order("core_route.id").Find(&routes)
	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Route, 0, len(routes))
	for _, route := range routes {
		entities = append(entities, r.routeToEntity(route))
	}
	return entities, nil
}

// routeScope restricts routes to the code sets; an empty set leaves that side open
func (r *GormScheduleRepository) routeScope(ctx context.Context, origins, destinations []string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&Routes{})
	if len(origins) > 0 {
		query = query.Where("core_route.origin_id IN (?)", r.locationIDs(ctx).Where("code IN ?", origins))
	}
	if len(destinations) > 0 {
		query = query.Where("core_route.destination_id IN (?)", r.locationIDs(ctx).Where("code IN ?", destinations))
	}
	return query
}

func (r *GormScheduleRepository) locationIDs(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&Locations{}).Select("id")
}

func (r *GormScheduleRepository) preloadRoute(query *gorm.DB, prefix string) *gorm.DB {
	if prefix != "" {
		query = query.Preload(strings.TrimSuffix(prefix, "."))
	}
	return query.
		Preload(prefix + "Origin.Parent").
		Preload(prefix + "Destination.Parent").
		Preload(prefix + "Carrier")
}

// routeToEntity converts a GORM route; unreadable clock times become unknown
func (r *GormScheduleRepository) routeToEntity(route Routes) entity.Route {
	return entity.Route{
		ID:              route.ID,
		Origin:          route.Origin.toEntity(),
		Destination:     route.Destination.toEntity(),
		Carrier:         route.Carrier.toEntity(),
		DaysOfOperation: route.DaysOfOperation,
		IsActive:        route.IsActive,
		DurationMinutes: route.DurationMinutes,
		DepartureTime:   r.parseOptionalClock(route.DepartureTime, "route", route.ID),
		ArrivalTime:     r.parseOptionalClock(route.ArrivalTime, "route", route.ID),
		UpdatedAt:       route.UpdatedAt,
	}
}

// sailingToEntity converts a GORM sailing, skipping rows whose clock times cannot be read
func (r *GormScheduleRepository) sailingToEntity(sailing Sailings) (entity.Sailing, bool) {
	departure, err := entity.ParseClockTime(sailing.DepartureTime)
	if err != nil {
		r.logger.Warn("Skipping sailing with unreadable departure time", "sailingID", sailing.ID, "error", err)
		return entity.Sailing{}, false
	}
	arrival, err := entity.ParseClockTime(sailing.ArrivalTime)
	if err != nil {
		r.logger.Warn("Skipping sailing with unreadable arrival time", "sailingID", sailing.ID, "error", err)
		return entity.Sailing{}, false
	}

	return entity.Sailing{
		ID:              sailing.ID,
		Route:           r.routeToEntity(sailing.Route),
		Date:            sailing.Date,
		DepartureTime:   departure,
		ArrivalTime:     arrival,
		DurationMinutes: sailing.DurationMinutes,
		Price:           sailing.Price,
	}, true
}

func (r *GormScheduleRepository) parseOptionalClock(value *string, kind string, id uint) *entity.ClockTime {
	if value == nil || *value == "" {
		return nil
	}
	t, err := entity.ParseClockTime(*value)
	if err != nil {
		r.logger.Warn("Ignoring unreadable clock time", "record", kind, "id", id, "value", *value)
		return nil
	}
	return &t
}
