package models

import "time"

// TimestampLayout is the storage and export format for complaint timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// ComplaintRecord is one logged complaint event as stored in the complaints
// table. ID is assigned by the store and increases monotonically in insertion
// order; records are immutable once written.
type ComplaintRecord struct {
	ID                int64     `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	Location          string    `json:"location"`
	ComplaintType     string    `json:"complaint_type"`
	ResolutionTime    float64   `json:"resolution_time"`    // minutes
	SatisfactionScore int       `json:"satisfaction_score"` // 1-5
	AgentName         string    `json:"agent_name"`
	CallDuration      float64   `json:"call_duration"` // seconds
	Status            string    `json:"status"`
}

// NewComplaintRecord is the caller-supplied portion of a record: everything
// except the store-assigned id.
type NewComplaintRecord struct {
	Timestamp         time.Time
	Location          string
	ComplaintType     string
	ResolutionTime    float64
	SatisfactionScore int
	AgentName         string
	CallDuration      float64
	Status            string
}
