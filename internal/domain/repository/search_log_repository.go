package repository

import (
	"context"

	"itinerary-service/internal/domain/entity"
)

// SearchLogRepository defines the interface for search log storage
type SearchLogRepository interface {
	Save(ctx context.Context, log *entity.SearchLog) error
}
