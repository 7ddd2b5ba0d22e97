//go:build e2e

package e2e

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/export"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/httpapi"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/service"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/pkg/httpserver"
	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/tests/e2e/mocks"
	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const adminPassword = "admin123"

type testEnv struct {
	server  *httptest.Server
	service *service.ReportingService
}

func setupEnv(t *testing.T, cacher httpapi.Cacher) *testEnv {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewComplaintRepository(db)
	require.NoError(t, repo.Initialize(context.Background()))

	logger := zap.NewNop()
	svc := service.NewReportingService(repo, logger)
	handlers := httpapi.NewHandlers(svc, cacher, logger, 5*time.Minute)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers.Register(router, httpserver.AdminGate(adminPassword))

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testEnv{server: server, service: svc}
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(e.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func (e *testEnv) post(t *testing.T, path, body, password string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, e.server.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if password != "" {
		req.Header.Set(httpserver.AdminPasswordHeader, password)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp
}

func TestE2E_BootstrapSeedingAndListing(t *testing.T) {
	env := setupEnv(t, &mocks.MissCache{})

	// The store starts empty; a pure service read stays empty.
	records, err := env.service.Records(context.Background(), service.FilterSpec{})
	require.NoError(t, err)
	require.Empty(t, records)

	// The first query-time read seeds the fixed 3-record sample.
	resp, body := env.get(t, "/api/complaints")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listing struct {
		Complaints []models.ComplaintRecord `json:"complaints"`
		Count      int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(body, &listing))
	require.Equal(t, 3, listing.Count)

	locations := make([]string, 0, 3)
	for _, rec := range listing.Complaints {
		locations = append(locations, rec.Location)
	}
	assert.ElementsMatch(t, []string{"NSW", "QLD", "VIC"}, locations)

	// Seeding happened exactly once: a second read returns the same set.
	resp, body = env.get(t, "/api/complaints")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &listing))
	assert.Equal(t, 3, listing.Count)
}

func TestE2E_CreateSummarizeExport(t *testing.T) {
	env := setupEnv(t, &mocks.MissCache{})

	// Seed via the query path, then add one more complaint.
	env.get(t, "/api/complaints")

	resp := env.post(t, "/api/complaints",
		`{"location":"WA","complaint_type":"Technical","resolution_time":40,"satisfaction_score":2,"agent_name":"Agent4","call_duration":300,"status":"Escalated"}`, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.post(t, "/api/complaints",
		`{"location":"WA","complaint_type":"Technical","resolution_time":40,"satisfaction_score":9,"agent_name":"Agent4","call_duration":300,"status":"Escalated"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "out-of-range score must be rejected")

	// Summary over the full set.
	resp2, body := env.get(t, "/api/summary")
	require.Equal(t, http.StatusOK, resp2.StatusCode)

	var summaryResp struct {
		NoData  bool                  `json:"no_data"`
		Summary service.MetricSummary `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(body, &summaryResp))
	assert.False(t, summaryResp.NoData)
	assert.Equal(t, 4, summaryResp.Summary.TotalComplaints)
	assert.Len(t, summaryResp.Summary.ByAgent, 4)

	cases := 0
	for _, perf := range summaryResp.Summary.ByAgent {
		cases += perf.CasesHandled
	}
	assert.Equal(t, 4, cases)

	// Filtered summary.
	resp2, body = env.get(t, "/api/summary?status=Escalated")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	require.NoError(t, json.Unmarshal(body, &summaryResp))
	assert.Equal(t, 1, summaryResp.Summary.TotalComplaints)
	assert.InDelta(t, 2.0, summaryResp.Summary.AvgSatisfaction, 1e-9)

	// CSV export of the filtered set parses back to the same record.
	resp2, body = env.get(t, "/api/export/csv?status=Escalated")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, "text/csv", resp2.Header.Get("Content-Type"))

	parsed, err := export.ParseCSV(body)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, "Agent4", parsed[0].AgentName)
	assert.Equal(t, "Escalated", parsed[0].Status)

	// Workbook export downloads with the right content type.
	resp2, body = env.get(t, "/api/export/xlsx")
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	assert.Equal(t, export.ExcelContentType, resp2.Header.Get("Content-Type"))
	assert.NotEmpty(t, body)
}

func TestE2E_AdminOperations(t *testing.T) {
	cache := &mocks.TrackingCache{}
	env := setupEnv(t, cache)
	env.get(t, "/api/complaints") // seed

	t.Run("clear requires the admin password", func(t *testing.T) {
		resp := env.post(t, "/api/admin/clear", "", "wrong")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("summary reads through the cache", func(t *testing.T) {
		resp, _ := env.get(t, "/api/summary")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		gets, _, _ := cache.Counts()
		assert.GreaterOrEqual(t, gets, 1)
	})

	t.Run("clear empties the store and drops cached summaries", func(t *testing.T) {
		_, _, delsBefore := cache.Counts()

		resp := env.post(t, "/api/admin/clear", "", adminPassword)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		_, _, dels := cache.Counts()
		assert.Greater(t, dels, delsBefore)

		records, err := env.service.Records(context.Background(), service.FilterSpec{})
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("sample load restores the fixed records", func(t *testing.T) {
		resp := env.post(t, "/api/admin/sample", "", adminPassword)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		records, err := env.service.Records(context.Background(), service.FilterSpec{})
		require.NoError(t, err)
		assert.Len(t, records, 3)
	})
}
