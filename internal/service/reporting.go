package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
	"go.uber.org/zap"
)

const (
	dbTimeout = 1 * time.Second
)

// ReportingService owns the complaint record set: reads, inserts, the
// bootstrap sample and the dashboard aggregates computed over it.
type ReportingService struct {
	storage ComplaintRepository
	logger  *zap.Logger
	seedMu  sync.Mutex
}

// NewReportingService creates a new ReportingService instance.
func NewReportingService(storage ComplaintRepository, logger *zap.Logger) *ReportingService {
	if storage == nil {
		panic("storage must not be nil")
	}
	if logger == nil {
		l, _ := zap.NewProduction()
		logger = l
	}
	return &ReportingService{
		storage: storage,
		logger:  logger,
	}
}

var (
	ErrNoRecords      = errors.New("no complaint records found")
	ErrStorageFailure = errors.New("storage failure")
)

// Records returns the stored records matching spec. A pure read: it never
// seeds or otherwise mutates the store.
func (s *ReportingService) Records(ctx context.Context, spec FilterSpec) ([]models.ComplaintRecord, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	records, err := s.storage.All(dbCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return spec.Apply(records), nil
}

// TotalRecords returns the number of stored records, unfiltered.
func (s *ReportingService) TotalRecords(ctx context.Context) (int64, error) {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	count, err := s.storage.Count(dbCtx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	return count, nil
}

// AddComplaint validates and stores a single record. The timestamp is set
// here if the caller left it zero.
func (s *ReportingService) AddComplaint(ctx context.Context, rec models.NewComplaintRecord) error {
	if err := ValidateRecord(rec); err != nil {
		return err
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now()
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.Insert(dbCtx, []models.NewComplaintRecord{rec}); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	s.logger.Info("complaint recorded",
		zap.String("location", rec.Location),
		zap.String("agent", rec.AgentName),
		zap.String("status", rec.Status))
	return nil
}

// EnsureSeeded inserts the bootstrap sample if the store is still empty.
// Callers invoke it after observing an empty read; the mutex and the
// re-check make concurrent first reads seed exactly once. Returns whether
// a seed insert happened.
func (s *ReportingService) EnsureSeeded(ctx context.Context) (bool, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	count, err := s.storage.Count(dbCtx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	if count > 0 {
		return false, nil
	}

	if err := s.storage.Insert(dbCtx, BootstrapSample()); err != nil {
		return false, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	s.logger.Info("empty store seeded with bootstrap sample")
	return true, nil
}

// LoadSample inserts the bootstrap sample unconditionally. Administrative
// operation; duplicates are the caller's responsibility.
func (s *ReportingService) LoadSample(ctx context.Context) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.Insert(dbCtx, BootstrapSample()); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	s.logger.Info("bootstrap sample loaded")
	return nil
}

// ClearAll removes every record. Irreversible.
func (s *ReportingService) ClearAll(ctx context.Context) error {
	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := s.storage.ClearAll(dbCtx); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}
	s.logger.Warn("all complaint records cleared")
	return nil
}

// Summary reads the records matching spec and computes their MetricSummary.
// An empty or fully-filtered-out set is not an error; the returned summary
// reports no data.
func (s *ReportingService) Summary(ctx context.Context, spec FilterSpec) (MetricSummary, error) {
	records, err := s.Records(ctx, spec)
	if err != nil {
		return MetricSummary{}, err
	}
	return Summarize(records), nil
}

// BootstrapSample returns the fixed 3-record sample set used to seed an
// empty store. Timestamps are taken at call time.
func BootstrapSample() []models.NewComplaintRecord {
	now := time.Now()
	return []models.NewComplaintRecord{
		{Timestamp: now, Location: "NSW", ComplaintType: "Billing", ResolutionTime: 15, SatisfactionScore: 4, AgentName: "Agent1", CallDuration: 120, Status: "Resolved"},
		{Timestamp: now, Location: "QLD", ComplaintType: "Service", ResolutionTime: 25, SatisfactionScore: 3, AgentName: "Agent2", CallDuration: 180, Status: "Pending"},
		{Timestamp: now, Location: "VIC", ComplaintType: "Product", ResolutionTime: 10, SatisfactionScore: 5, AgentName: "Agent3", CallDuration: 90, Status: "Resolved"},
	}
}

// Summarize computes the dashboard aggregates over a record set. Pure and
// deterministic for a fixed input; an empty input yields a summary with no
// data rather than an error.
func Summarize(records []models.ComplaintRecord) MetricSummary {
	summary := MetricSummary{
		TotalComplaints: len(records),
		ByAgent:         make(map[string]AgentPerformance),
		DailyTrend:      []DailyCount{},
		ByLocation:      make(map[string]int),
		ByComplaintType: make(map[string]int),
	}
	if len(records) == 0 {
		return summary
	}

	type agentTotals struct {
		resolution   float64
		satisfaction float64
		duration     float64
		cases        int
	}

	var sumResolution, sumSatisfaction, sumDuration float64
	perAgent := make(map[string]*agentTotals)
	perDay := make(map[string]int)

	for _, rec := range records {
		sumResolution += rec.ResolutionTime
		sumSatisfaction += float64(rec.SatisfactionScore)
		sumDuration += rec.CallDuration

		at, ok := perAgent[rec.AgentName]
		if !ok {
			at = &agentTotals{}
			perAgent[rec.AgentName] = at
		}
		at.resolution += rec.ResolutionTime
		at.satisfaction += float64(rec.SatisfactionScore)
		at.duration += rec.CallDuration
		at.cases++

		perDay[rec.Timestamp.Format("2006-01-02")]++
		summary.ByLocation[rec.Location]++
		summary.ByComplaintType[rec.ComplaintType]++
	}

	n := float64(len(records))
	summary.AvgResolutionTime = sumResolution / n
	summary.AvgSatisfaction = sumSatisfaction / n
	summary.AvgCallDuration = sumDuration / n

	for name, at := range perAgent {
		cases := float64(at.cases)
		summary.ByAgent[name] = AgentPerformance{
			AvgResolutionTime: at.resolution / cases,
			AvgSatisfaction:   at.satisfaction / cases,
			AvgCallDuration:   at.duration / cases,
			CasesHandled:      at.cases,
		}
	}

	summary.DailyTrend = make([]DailyCount, 0, len(perDay))
	for day, count := range perDay {
		summary.DailyTrend = append(summary.DailyTrend, DailyCount{Date: day, Count: count})
	}
	sort.Slice(summary.DailyTrend, func(i, j int) bool {
		return summary.DailyTrend[i].Date < summary.DailyTrend[j].Date
	})

	return summary
}
