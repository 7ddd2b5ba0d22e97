package mocks

import (
	"context"
	"errors"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
)

// MockComplaintRepository is a mock implementation of the ComplaintRepository
// interface for testing the service layer.
type MockComplaintRepository struct {
	InsertFunc   func(ctx context.Context, records []models.NewComplaintRecord) error
	AllFunc      func(ctx context.Context) ([]models.ComplaintRecord, error)
	CountFunc    func(ctx context.Context) (int64, error)
	ClearAllFunc func(ctx context.Context) error
}

// Insert implements the ComplaintRepository interface
func (m *MockComplaintRepository) Insert(ctx context.Context, records []models.NewComplaintRecord) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, records)
	}
	return errors.New("InsertFunc not implemented")
}

// All implements the ComplaintRepository interface
func (m *MockComplaintRepository) All(ctx context.Context) ([]models.ComplaintRecord, error) {
	if m.AllFunc != nil {
		return m.AllFunc(ctx)
	}
	return nil, errors.New("AllFunc not implemented")
}

// Count implements the ComplaintRepository interface
func (m *MockComplaintRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, errors.New("CountFunc not implemented")
}

// ClearAll implements the ComplaintRepository interface
func (m *MockComplaintRepository) ClearAll(ctx context.Context) error {
	if m.ClearAllFunc != nil {
		return m.ClearAllFunc(ctx)
	}
	return errors.New("ClearAllFunc not implemented")
}
