package repository

import (
	"context"
	"errors"
	"fmt"

	"itinerary-service/internal/domain/entity"
	"itinerary-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormCarrierRepository implements the CarrierRepository interface
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GORM carrier repository
func NewGormCarrierRepository(db *gorm.DB) repository.CarrierRepository {
	return &GormCarrierRepository{
		db: db,
	}
}

// Carriers GORM model for database mapping
type Carriers struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"column:code;size:3;uniqueIndex"`
	Name        string `gorm:"column:name"`
	CarrierType string `gorm:"column:carrier_type;size:3"`
	Website     string `gorm:"column:website"`
}

// TableName overrides the default table name
func (Carriers) TableName() string {
	return "core_carrier"
}

func (c Carriers) toEntity() entity.Carrier {
	return entity.Carrier{
		ID:      c.ID,
		Code:    c.Code,
		Name:    c.Name,
		Kind:    entity.CarrierKind(c.CarrierType),
		Website: c.Website,
	}
}

// GetByCode finds a carrier by code
func (r *GormCarrierRepository) GetByCode(ctx context.Context, code string) (*entity.Carrier, error) {
	var carrier Carriers
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&carrier)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("carrier %s: %w", code, entity.ErrNotFound)
		}
		return nil, result.Error
	}

	c := carrier.toEntity()
	return &c, nil
}

// List returns every carrier ordered by code
func (r *GormCarrierRepository) List(ctx context.Context) ([]entity.Carrier, error) {
	var carriers []Carriers
	result := r.db.WithContext(ctx).Order("code").Find(&carriers)

	if result.Error != nil {
		return nil, result.Error
	}

	entities := make([]entity.Carrier, 0, len(carriers))
	for _, c := range carriers {
		entities = append(entities, c.toEntity())
	}
	return entities, nil
}
