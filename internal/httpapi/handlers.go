package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/export"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultCacheDuration = 10 * time.Minute
	defaultTimeout       = 10 * time.Second

	cacheKeySummary = "http:metric_summary"

	dateLayout = "2006-01-02"
)

type Handlers struct {
	reporting ReportingService
	cache     Cacher
	logger    *zap.Logger
	sfGroup   singleflight.Group
	cacheTTL  time.Duration
}

// NewHandlers initializes the HTTP handlers.
func NewHandlers(reporting ReportingService, cache Cacher, logger *zap.Logger, ttl time.Duration) *Handlers {
	if reporting == nil {
		panic("nil ReportingService provided to NewHandlers")
	}
	if ttl <= 0 {
		ttl = defaultCacheDuration
	}
	return &Handlers{
		reporting: reporting,
		cache:     cache,
		logger:    logger.Named("http-handler"),
		cacheTTL:  ttl,
	}
}

// Register mounts all routes. Administrative routes go behind adminGate,
// which the caller supplies (a password check outside this core's scope).
func (h *Handlers) Register(router gin.IRouter, adminGate gin.HandlerFunc) {
	api := router.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/complaints", h.ListComplaints)
	api.POST("/complaints", h.CreateComplaint)
	api.GET("/complaints/options", h.FormOptions)
	api.GET("/summary", h.Summary)
	api.GET("/export/csv", h.ExportCSV)
	api.GET("/export/xlsx", h.ExportWorkbook)

	admin := api.Group("/admin", adminGate)
	admin.POST("/clear", h.ClearAll)
	admin.POST("/sample", h.LoadSample)
}

func parseFilter(c *gin.Context) (service.FilterSpec, error) {
	var spec service.FilterSpec

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return spec, fmt.Errorf("start must be YYYY-MM-DD")
		}
		spec.Start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return spec, fmt.Errorf("end must be YYYY-MM-DD")
		}
		spec.End = &t
	}
	if spec.Start != nil && spec.End != nil && spec.End.Before(*spec.Start) {
		return spec, fmt.Errorf("end must not be before start")
	}

	spec.Statuses = c.QueryArray("status")
	spec.Agents = c.QueryArray("agent")
	return spec, nil
}

func normalizeKey(prefix string, spec service.FilterSpec) string {
	return prefix + ":" + spec.CacheKey()
}

func (h *Handlers) handleError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	switch ctx.Err() {
	case context.Canceled:
		h.logger.Warn("request canceled", zap.String("op", op))
		c.AbortWithStatusJSON(http.StatusRequestTimeout, gin.H{"error": "request canceled"})
		return
	case context.DeadlineExceeded:
		h.logger.Warn("request timeout", zap.String("op", op))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
		return
	}

	var valErr *service.ValidationError
	switch {
	case errors.As(err, &valErr):
		h.logger.Info("validation rejected", zap.String("op", op), zap.String("field", valErr.Field))
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": valErr.Error(), "field": valErr.Field})
	case errors.Is(err, service.ErrStorageFailure):
		h.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "database error"})
	default:
		h.logger.Error("unexpected error", zap.String("op", op), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("%s failed", op)})
	}
}

// invalidateSummaries drops every cached summary after the record set
// changed. Failure to invalidate is logged, not surfaced: the mutation
// itself already succeeded.
func (h *Handlers) invalidateSummaries(ctx context.Context) {
	if err := h.cache.DeleteByPrefix(ctx, cacheKeySummary); err != nil {
		h.logger.Warn("failed to invalidate cached summaries", zap.Error(err))
	}
}

// fetchRecords reads the records matching spec, seeding the bootstrap sample
// first when the whole store is observed empty.
func (h *Handlers) fetchRecords(ctx context.Context, spec service.FilterSpec) ([]models.ComplaintRecord, error) {
	records, err := h.reporting.Records(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(records) > 0 {
		return records, nil
	}

	total, err := h.reporting.TotalRecords(ctx)
	if err != nil {
		return nil, err
	}
	if total > 0 {
		// Filtered out, not empty: nothing to seed.
		return records, nil
	}

	seeded, err := h.reporting.EnsureSeeded(ctx)
	if err != nil {
		return nil, err
	}
	if !seeded {
		return records, nil
	}
	h.invalidateSummaries(ctx)
	return h.reporting.Records(ctx, spec)
}

func (h *Handlers) Health(c *gin.Context) {
	total, err := h.reporting.TotalRecords(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read record count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "complaint_count": total})
}

func (h *Handlers) ListComplaints(c *gin.Context) {
	spec, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	records, err := h.fetchRecords(ctx, spec)
	if err != nil {
		h.handleError(c, "ListComplaints", err)
		return
	}
	if records == nil {
		records = []models.ComplaintRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"complaints": records, "count": len(records)})
}

type createComplaintRequest struct {
	Location          string  `json:"location" binding:"required"`
	ComplaintType     string  `json:"complaint_type" binding:"required"`
	ResolutionTime    float64 `json:"resolution_time"`
	SatisfactionScore int     `json:"satisfaction_score"`
	AgentName         string  `json:"agent_name" binding:"required"`
	CallDuration      float64 `json:"call_duration"`
	Status            string  `json:"status" binding:"required"`
}

func (h *Handlers) CreateComplaint(c *gin.Context) {
	var req createComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	rec := models.NewComplaintRecord{
		Timestamp:         time.Now(),
		Location:          req.Location,
		ComplaintType:     req.ComplaintType,
		ResolutionTime:    req.ResolutionTime,
		SatisfactionScore: req.SatisfactionScore,
		AgentName:         req.AgentName,
		CallDuration:      req.CallDuration,
		Status:            req.Status,
	}
	if err := h.reporting.AddComplaint(ctx, rec); err != nil {
		h.handleError(c, "CreateComplaint", err)
		return
	}
	h.invalidateSummaries(ctx)

	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

func (h *Handlers) FormOptions(c *gin.Context) {
	c.JSON(http.StatusOK, service.DefaultFormOptions())
}

func (h *Handlers) Summary(c *gin.Context) {
	spec, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	cacheKey := normalizeKey(cacheKeySummary, spec)

	summary, err := FindAndCache(ctx, h.cache, &h.sfGroup, cacheKey, h.cacheTTL, h.logger, func(fetchCtx context.Context) (service.MetricSummary, error) {
		records, err := h.fetchRecords(fetchCtx, spec)
		if err != nil {
			return service.MetricSummary{}, err
		}
		return service.Summarize(records), nil
	})
	if err != nil {
		h.handleError(c, "Summary", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"no_data": !summary.HasData(), "summary": summary})
}

func (h *Handlers) ExportCSV(c *gin.Context) {
	h.export(c, "ExportCSV", export.CSVFileName, export.CSVContentType, export.WriteCSV)
}

func (h *Handlers) ExportWorkbook(c *gin.Context) {
	h.export(c, "ExportWorkbook", export.ExcelFileName, export.ExcelContentType, export.WriteWorkbook)
}

func (h *Handlers) export(c *gin.Context, op, filename, contentType string, serialize func([]models.ComplaintRecord) ([]byte, error)) {
	spec, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	records, err := h.fetchRecords(ctx, spec)
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	data, err := serialize(records)
	if err != nil {
		h.handleError(c, op, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *Handlers) ClearAll(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	if err := h.reporting.ClearAll(ctx); err != nil {
		h.handleError(c, "ClearAll", err)
		return
	}
	h.invalidateSummaries(ctx)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (h *Handlers) LoadSample(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), defaultTimeout)
	defer cancel()

	if err := h.reporting.LoadSample(ctx); err != nil {
		h.handleError(c, "LoadSample", err)
		return
	}
	h.invalidateSummaries(ctx)
	c.JSON(http.StatusOK, gin.H{"status": "sample loaded"})
}
