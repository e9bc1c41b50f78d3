package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormLocationRepository implements the LocationRepository interface
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository
func NewGormLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &GormLocationRepository{
		db: db,
	}
}

// Locations GORM model for database mapping
type Locations struct {
	ID           uint       `gorm:"primaryKey"`
	Code         string     `gorm:"column:code;size:5;uniqueIndex"`
	Name         string     `gorm:"column:name"`
	City         string     `gorm:"column:city"`
	Country      string     `gorm:"column:country"`
	LocationType string     `gorm:"column:location_type;size:3"`
	Latitude     *float64   `gorm:"column:latitude"`
	Longitude    *float64   `gorm:"column:longitude"`
	ParentID     *uint      `gorm:"column:parent_id"`
	Parent       *Locations `gorm:"foreignKey:ParentID"`
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Locations) TableName() string {
	return "core_location"
}

func (l Locations) toEntity() entity.Location {
	loc := entity.Location{
		ID:        l.ID,
		Code:      l.Code,
		Name:      l.Name,
		City:      l.City,
		Country:   l.Country,
		Type:      entity.LocationType(l.LocationType),
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		UpdatedAt: l.UpdatedAt,
	}
	if l.Parent != nil {
		loc.ParentCode = l.Parent.Code
	}
	return loc
}

// GetByCode finds a location by code
func (r *GormLocationRepository) GetByCode(ctx context.Context, code string) (*entity.Location, error) {
	var location Locations
	result := r.db.WithContext(ctx).Preload("Parent").Where("code = ?", code).First(&location)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("location %s: %w", code, entity.ErrNotFound)
		}
		return nil, result.Error
	}

	loc := location.toEntity()
	return &loc, nil
}

// List returns every location ordered by code
func (r *GormLocationRepository) List(ctx context.Context) ([]entity.Location, error) {
	var locations []Locations
	result := r.db.WithContext(ctx).Preload("Parent").Order("code").Find(&locations)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Location, 0, len(locations))
	for _, l := range locations {
		entities = append(entities, l.toEntity())
	}
	return entities, nil
}

// ListHierarchy returns the code and parent code of every location
func (r *GormLocationRepository) ListHierarchy(ctx context.Context) ([]entity.LocationLink, error) {
	var rows []struct {
		Code       string
		ParentCode *string
	}
	result := r.db.WithContext(ctx).
		Table("core_location AS l").
		Select("l.code AS code, p.code AS parent_code").
		Joins("LEFT JOIN core_location AS p ON p.id = l.parent_id").
		Order("l.code").
		Scan(&rows)

	if result.Error != nil {
		return nil, result.Error
	}

	links := make([]entity.LocationLink, 0, len(rows))
	for _, row := range rows {
		link := entity.LocationLink{Code: row.Code}
		if row.ParentCode != nil {
			link.ParentCode = *row.ParentCode
		}
		links = append(links, link)
	}
	return links, nil
}
