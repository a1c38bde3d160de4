package types

import (
	"regexp"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// TableName represents a monitored database table, optionally schema qualified
type TableName string

// String returns the string representation
func (t TableName) String() string {
	return string(t)
}

// Validate checks that the table name is usable as a path segment and document ID
func (t TableName) Validate() error {
	if t == "" {
		return goerr.New("table name is empty")
	}
	if !tableNamePattern.MatchString(string(t)) {
		return goerr.New("table name contains invalid characters", goerr.V("table", t))
	}
	return nil
}

// ReportID represents a forecast report identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID using UUID v7
func NewReportID() (ReportID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate report ID")
	}
	return ReportID(id.String()), nil
}

// TierID identifies a severity tier
type TierID string

const (
	TierCritical TierID = "critical"
	TierHigh     TierID = "high"
	TierModerate TierID = "moderate"
	TierLow      TierID = "low"
)

// String returns the string representation
func (id TierID) String() string {
	return string(id)
}

// IsValid checks if the tier ID is one of the known tiers
func (id TierID) IsValid() bool {
	switch id {
	case TierCritical, TierHigh, TierModerate, TierLow:
		return true
	default:
		return false
	}
}
