package model

import (
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// Treatment is the UI treatment of a tier, matching alert types of the dashboard
type Treatment string

const (
	TreatmentError   Treatment = "error"
	TreatmentWarning Treatment = "warning"
	TreatmentInfo    Treatment = "info"
	TreatmentSuccess Treatment = "success"
)

// unboundedDays marks the last tier, which matches any remaining outlook
const unboundedDays = -1

// Tier represents an overflow risk tier
type Tier struct {
	ID          types.TierID `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Treatment   Treatment    `json:"treatment"`
	Color       string       `json:"color"`
	Action      string       `json:"action,omitempty"`
	Level       int          `json:"level"`    // Importance level (0-99)
	MaxDays     int          `json:"max_days"` // Inclusive upper bound, -1 for unbounded
}

// tiers is ordered by ascending MaxDays. Classify returns the first match.
var tiers = [...]Tier{
	{
		ID:          types.TierCritical,
		Name:        "CRITICAL",
		Title:       "Critical Overflow Risk",
		Description: "Integer overflow is imminent. Immediate action required to prevent data corruption.",
		Treatment:   TreatmentError,
		Color:       "#cf1322",
		Action:      "Mitigate Now",
		Level:       90,
		MaxDays:     7,
	},
	{
		ID:          types.TierHigh,
		Name:        "HIGH",
		Title:       "High Overflow Risk",
		Description: "Integer overflow projected within 30 days. Plan mitigation steps soon.",
		Treatment:   TreatmentWarning,
		Color:       "#cf1322",
		Level:       70,
		MaxDays:     30,
	},
	{
		ID:          types.TierModerate,
		Name:        "MODERATE",
		Title:       "Moderate Overflow Risk",
		Description: "Integer overflow projected within 3 months. Add this to your planned work.",
		Treatment:   TreatmentInfo,
		Color:       "#faad14",
		Level:       50,
		MaxDays:     90,
	},
	{
		ID:          types.TierLow,
		Name:        "LOW",
		Title:       "Low Overflow Risk",
		Description: "No imminent risk of integer overflow. Continue monitoring.",
		Treatment:   TreatmentSuccess,
		Color:       "#3f8600",
		Level:       10,
		MaxDays:     unboundedDays,
	},
}

// Tiers returns a copy of the tier table, most severe first
func Tiers() []Tier {
	result := make([]Tier, len(tiers))
	copy(result, tiers[:])
	return result
}

// Classify maps an outlook to its tier. A safe outlook is always LOW.
func Classify(outlook Outlook) Tier {
	days, ok := outlook.Days()
	if !ok {
		return tiers[len(tiers)-1]
	}

	for _, tier := range tiers {
		if tier.MaxDays == unboundedDays || days <= tier.MaxDays {
			return tier
		}
	}
	return tiers[len(tiers)-1]
}

// FindTierByID finds a tier by its ID
func FindTierByID(id types.TierID) *Tier {
	for _, tier := range tiers {
		if tier.ID == id {
			result := tier
			return &result
		}
	}
	return nil
}

// MoreSevereThan returns true if t ranks above other
func (t Tier) MoreSevereThan(other Tier) bool {
	return t.Level > other.Level
}

// IsAlertable returns true if the tier warrants a notification
func (t Tier) IsAlertable() bool {
	return t.ID != types.TierLow
}
