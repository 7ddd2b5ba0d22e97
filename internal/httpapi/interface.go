package httpapi

import (
	"context"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/service"
)

// Cacher defines the interface for cache operations.
type Cacher interface {
	Close() error
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ReportingService is the engine contract the HTTP layer consumes.
type ReportingService interface {
	Records(ctx context.Context, spec service.FilterSpec) ([]models.ComplaintRecord, error)
	TotalRecords(ctx context.Context) (int64, error)
	AddComplaint(ctx context.Context, rec models.NewComplaintRecord) error
	EnsureSeeded(ctx context.Context) (bool, error)
	LoadSample(ctx context.Context) error
	ClearAll(ctx context.Context) error
}
