package service

import (
	"fmt"

	"github.com/HTS-CEO/Call-Center-Dashboard-Creation/internal/repository/models"
)

// ValidationError reports a record field that failed validation before
// reaching the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateRecord checks the numeric constraints on a record. The location,
// type, agent and status strings are deliberately not checked against the
// known option sets; the store treats them as extensible labels.
func ValidateRecord(rec models.NewComplaintRecord) error {
	if rec.SatisfactionScore < 1 || rec.SatisfactionScore > 5 {
		return &ValidationError{Field: "satisfaction_score", Reason: "must be between 1 and 5"}
	}
	if rec.ResolutionTime < 0 {
		return &ValidationError{Field: "resolution_time", Reason: "must not be negative"}
	}
	if rec.CallDuration < 0 {
		return &ValidationError{Field: "call_duration", Reason: "must not be negative"}
	}
	return nil
}
