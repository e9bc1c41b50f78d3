package usecase

import (
	"context"
	"errors"
	"fmt"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"
	"itinerary-service/pkg/utils"
)

// CatalogService exposes read-only listings of locations, carriers and routes
type CatalogService struct {
	locationRepo repository.LocationRepository
	carrierRepo  repository.CarrierRepository
	scheduleRepo repository.ScheduleRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	locationRepo repository.LocationRepository,
	carrierRepo repository.CarrierRepository,
	scheduleRepo repository.ScheduleRepository,
) *CatalogService {
	return &CatalogService{
		locationRepo: locationRepo,
		carrierRepo:  carrierRepo,
		scheduleRepo: scheduleRepo,
	}
}

// ListLocations returns every location
func (c *CatalogService) ListLocations(ctx context.Context) ([]entity.Location, error) {
	locations, err := c.locationRepo.List(ctx)
	if err != nil {
		return nil, unavailable("list locations", err)
	}
	return locations, nil
}

// GetLocation returns one location by code
func (c *CatalogService) GetLocation(ctx context.Context, code string) (*entity.Location, error) {
	code = utils.NormalizeCode(code)
	if code == "" {
		return nil, &entity.ValidationError{Field: "code", Message: "is required"}
	}

	location, err := c.locationRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, unavailable("get location", err)
	}
	return location, nil
}

// ListCarriers returns every carrier
func (c *CatalogService) ListCarriers(ctx context.Context) ([]entity.Carrier, error) {
	carriers, err := c.carrierRepo.List(ctx)
	if err != nil {
		return nil, unavailable("list carriers", err)
	}
	return carriers, nil
}

// ListRoutes returns active routes, optionally filtered by exact origin and destination codes
func (c *CatalogService) ListRoutes(ctx context.Context, origin, destination string) ([]entity.Route, error) {
	routes, err := c.scheduleRepo.ListActiveRoutes(ctx, utils.NormalizeCode(origin), utils.NormalizeCode(destination))
	if err != nil {
		return nil, unavailable("list routes", err)
	}
	return routes, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", entity.ErrRepositoryUnavailable, op, err)
}
