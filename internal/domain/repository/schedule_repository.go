package repository

import (
	"context"
	"time"

	"itinerary-service/internal/domain/entity"
)

// ScheduleRepository defines read access to recurring routes and dated sailings.
// An empty origins or destinations slice matches every location.
type ScheduleRepository interface {
	RecurringRoutesActiveOn(ctx context.Context, origins, destinations []string, weekday int) ([]entity.Route, error)
	SailingsOn(ctx context.Context, origins, destinations []string, date time.Time) ([]entity.Sailing, error)
	ListActiveRoutes(ctx context.Context, origin, destination string) ([]entity.Route, error)
}
