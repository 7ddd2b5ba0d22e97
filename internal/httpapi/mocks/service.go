package mocks

import (
	"context"
	"errors"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/service"
)

// MockReportingService is a mock implementation of the ReportingService
// interface for testing the handler layer. It uses function-based mocking
// for flexibility.
type MockReportingService struct {
	RecordsFunc      func(ctx context.Context, spec service.FilterSpec) ([]models.ComplaintRecord, error)
	TotalRecordsFunc func(ctx context.Context) (int64, error)
	AddComplaintFunc func(ctx context.Context, rec models.NewComplaintRecord) error
	EnsureSeededFunc func(ctx context.Context) (bool, error)
	LoadSampleFunc   func(ctx context.Context) error
	ClearAllFunc     func(ctx context.Context) error
}

// Records implements the ReportingService interface
func (m *MockReportingService) Records(ctx context.Context, spec service.FilterSpec) ([]models.ComplaintRecord, error) {
	if m.RecordsFunc != nil {
		return m.RecordsFunc(ctx, spec)
	}
	return nil, errors.New("RecordsFunc not implemented")
}

// TotalRecords implements the ReportingService interface
func (m *MockReportingService) TotalRecords(ctx context.Context) (int64, error) {
	if m.TotalRecordsFunc != nil {
		return m.TotalRecordsFunc(ctx)
	}
	return 0, errors.New("TotalRecordsFunc not implemented")
}

// AddComplaint implements the ReportingService interface
func (m *MockReportingService) AddComplaint(ctx context.Context, rec models.NewComplaintRecord) error {
	if m.AddComplaintFunc != nil {
		return m.AddComplaintFunc(ctx, rec)
	}
	return errors.New("AddComplaintFunc not implemented")
}

// EnsureSeeded implements the ReportingService interface
func (m *MockReportingService) EnsureSeeded(ctx context.Context) (bool, error) {
	if m.EnsureSeededFunc != nil {
		return m.EnsureSeededFunc(ctx)
	}
	return false, errors.New("EnsureSeededFunc not implemented")
}

// LoadSample implements the ReportingService interface
func (m *MockReportingService) LoadSample(ctx context.Context) error {
	if m.LoadSampleFunc != nil {
		return m.LoadSampleFunc(ctx)
	}
	return errors.New("LoadSampleFunc not implemented")
}

// ClearAll implements the ReportingService interface
func (m *MockReportingService) ClearAll(ctx context.Context) error {
	if m.ClearAllFunc != nil {
		return m.ClearAllFunc(ctx)
	}
	return errors.New("ClearAllFunc not implemented")
}
