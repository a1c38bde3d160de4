package model

import "math"

const (
	// HorizonDays is the look-ahead of the prediction source
	HorizonDays = 30

	// Int32Ceiling is the largest value a signed 32-bit identifier can hold
	Int32Ceiling int64 = 2147483647

	// WarningRatio marks the warning reference line relative to the ceiling
	WarningRatio = 0.9

	// DefaultFloorValue is the lower clamp of the synthetic history
	DefaultFloorValue int64 = 1_000_000_000
)

// GrowthRate is the number of identifiers consumed per day. Negative values
// mean the max id is shrinking, e.g. after an ID reset.
type GrowthRate float64

// ComputeGrowthRate derives a constant daily growth rate from the current max
// id and the predicted max id HorizonDays ahead.
func ComputeGrowthRate(current, predictedIn30Days int64) GrowthRate {
	return GrowthRate((float64(predictedIn30Days) - float64(current)) / HorizonDays)
}

// PerDay returns the rate rounded to whole identifiers for display
func (r GrowthRate) PerDay() int64 {
	return int64(math.Round(float64(r)))
}

// IsGrowing returns true if identifiers are consumed over time
func (r GrowthRate) IsGrowing() bool {
	return r > 0
}

// WarningThreshold returns the warning reference value for the given ceiling
func WarningThreshold(ceiling int64) float64 {
	return WarningRatio * float64(ceiling)
}
