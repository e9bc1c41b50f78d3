package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// CarrierRepository defines the interface for carrier operations
type CarrierRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Carrier, error)
	List(ctx context.Context) ([]entity.Carrier, error)
}
