package model

import (
	"time"

	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// AlertState tracks the last tier observed for a table and when it was last notified
type AlertState struct {
	Table      types.TableName `json:"table"`
	TierID     types.TierID    `json:"tier_id"`
	ReportID   types.ReportID  `json:"report_id"`
	UpdatedAt  time.Time       `json:"updated_at"`
	NotifiedAt time.Time       `json:"notified_at"` // Zero if never notified
}

// Tier returns the tier of the state, LOW for an unknown ID
func (s *AlertState) Tier() Tier {
	if tier := FindTierByID(s.TierID); tier != nil {
		return *tier
	}
	return Classify(Safe())
}

// ShouldNotify returns true if moving from prev to next warrants an alert.
// prev is nil when the table has never been observed.
func ShouldNotify(prev *AlertState, next Tier) bool {
	if !next.IsAlertable() {
		return false
	}
	if prev == nil {
		return true
	}
	return next.MoreSevereThan(prev.Tier())
}
