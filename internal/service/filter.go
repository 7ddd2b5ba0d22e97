package service

import (
	"sort"
	"strings"
	"time"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
)

// FilterSpec narrows which records participate in a query. A nil or empty
// dimension constrains nothing; present dimensions are ANDed together.
// Date bounds are inclusive and compared on the record's calendar date.
type FilterSpec struct {
	Start    *time.Time
	End      *time.Time
	Statuses []string
	Agents   []string
}

// IsZero reports whether the spec constrains nothing.
func (f FilterSpec) IsZero() bool {
	return f.Start == nil && f.End == nil && len(f.Statuses) == 0 && len(f.Agents) == 0
}

// Matches reports whether rec satisfies every present dimension.
func (f FilterSpec) Matches(rec models.ComplaintRecord) bool {
	if f.Start != nil || f.End != nil {
		day := truncateToDate(rec.Timestamp)
		if f.Start != nil && day.Before(truncateToDate(*f.Start)) {
			return false
		}
		if f.End != nil && day.After(truncateToDate(*f.End)) {
			return false
		}
	}
	if len(f.Statuses) > 0 && !containsString(f.Statuses, rec.Status) {
		return false
	}
	if len(f.Agents) > 0 && !containsString(f.Agents, rec.AgentName) {
		return false
	}
	return true
}

// Apply returns the records matching the spec. The input slice is never
// mutated; a zero spec returns the input unchanged.
func (f FilterSpec) Apply(records []models.ComplaintRecord) []models.ComplaintRecord {
	if f.IsZero() {
		return records
	}
	filtered := make([]models.ComplaintRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// CacheKey returns a normalized representation of the spec, stable across
// the ordering of the status and agent sets.
func (f FilterSpec) CacheKey() string {
	var b strings.Builder
	if f.Start != nil {
		b.WriteString(truncateToDate(*f.Start).Format("2006-01-02"))
	}
	b.WriteByte(':')
	if f.End != nil {
		b.WriteString(truncateToDate(*f.End).Format("2006-01-02"))
	}
	b.WriteByte(':')
	b.WriteString(joinSorted(f.Statuses))
	b.WriteByte(':')
	b.WriteString(joinSorted(f.Agents))
	return b.String()
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func joinSorted(set []string) string {
	if len(set) == 0 {
		return ""
	}
	sorted := append([]string(nil), set...)
	sort.Strings(sorted)
	return strings.Join(sorted, "|")
}
