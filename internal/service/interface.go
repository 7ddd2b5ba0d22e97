package service

import (
	"context"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
)

// ComplaintRepository defines the interface for database operations for service.
type ComplaintRepository interface {
	Insert(ctx context.Context, records []models.NewComplaintRecord) error
	All(ctx context.Context) ([]models.ComplaintRecord, error)
	Count(ctx context.Context) (int64, error)
	ClearAll(ctx context.Context) error
}
