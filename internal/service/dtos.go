package service

// AgentPerformance is the per-agent rollup over a record set.
type AgentPerformance struct {
	AvgResolutionTime float64 `json:"avg_resolution_time"`
	AvgSatisfaction   float64 `json:"avg_satisfaction"`
	AvgCallDuration   float64 `json:"avg_call_duration"`
	CasesHandled      int     `json:"cases_handled"`
}

// DailyCount is one point of the daily complaint trend.
type DailyCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// MetricSummary is the derived dashboard view over a (possibly filtered)
// record set. It is recomputed on every query and never persisted.
type MetricSummary struct {
	TotalComplaints   int                         `json:"total_complaints"`
	AvgResolutionTime float64                     `json:"avg_resolution_time"`
	AvgSatisfaction   float64                     `json:"avg_satisfaction"`
	AvgCallDuration   float64                     `json:"avg_call_duration"`
	ByAgent           map[string]AgentPerformance `json:"by_agent"`
	DailyTrend        []DailyCount                `json:"daily_trend"`
	ByLocation        map[string]int              `json:"by_location"`
	ByComplaintType   map[string]int              `json:"by_complaint_type"`
}

// HasData reports whether the summary was computed over at least one record.
// Averages are meaningless when it returns false.
func (m MetricSummary) HasData() bool {
	return m.TotalComplaints > 0
}

// FormOptions lists the value sets the complaint form offers. The store does
// not enforce them; new locations or types can appear without a schema change.
type FormOptions struct {
	Locations      []string `json:"locations"`
	ComplaintTypes []string `json:"complaint_types"`
	Agents         []string `json:"agents"`
	Statuses       []string `json:"statuses"`
}

// DefaultFormOptions returns the option sets offered by the complaint form.
func DefaultFormOptions() FormOptions {
	return FormOptions{
		Locations:      []string{"NSW", "QLD", "VIC", "WA", "SA", "TAS", "NT", "ACT"},
		ComplaintTypes: []string{"Billing", "Service", "Product", "Technical", "Other"},
		Agents:         []string{"Agent1", "Agent2", "Agent3", "Agent4", "Agent5"},
		Statuses:       []string{"Resolved", "Pending", "Escalated"},
	}
}
