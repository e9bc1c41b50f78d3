package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// LocationRepository defines the interface for location lookups
type LocationRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Location, error)
	List(ctx context.Context) ([]entity.Location, error)
	ListHierarchy(ctx context.Context) ([]entity.LocationLink, error)
}
