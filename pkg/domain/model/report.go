package model

import (
	"time"

	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

// Prediction is the payload of the upstream prediction source
type Prediction struct {
	PredictedMaxIDIn30Days int64 `json:"predicted_max_id_in_30_days"`
}

// ProjectionInput holds everything BuildReport needs for one table
type ProjectionInput struct {
	Table          types.TableName
	CurrentValue   int64
	PredictedValue int64
	Ceiling        int64 // Int32Ceiling when zero
	FloorValue     int64 // DefaultFloorValue when zero
}

// Report is the full projection of one table as consumed by the rendering layer
type Report struct {
	ID                  types.ReportID   `json:"id"`
	Table               types.TableName  `json:"table"`
	GeneratedAt         time.Time        `json:"generated_at"`
	PredictedValue      int64            `json:"predicted_max_id_in_30_days"`
	GrowthRate          GrowthRate       `json:"growth_rate_per_day"`
	GrowthPerDay        int64            `json:"growth_per_day_rounded"`
	Series              []Sample         `json:"series"`
	Forecast            OverflowForecast `json:"forecast"`
	Tier                Tier             `json:"tier"`
	OverflowPercentage  int              `json:"overflow_percentage"`
	GaugeStatus         string           `json:"gauge_status"`
	RemainingCapacity   int64            `json:"remaining_capacity"`
	WarningThreshold    float64          `json:"warning_threshold"`
	PredictionOverflows bool             `json:"prediction_overflows"`
}

// BuildReport runs the projection engine over a single prediction. ID and
// GeneratedAt are left for the caller to stamp.
func BuildReport(in ProjectionInput) Report {
	ceiling := in.Ceiling
	if ceiling == 0 {
		ceiling = Int32Ceiling
	}
	floor := in.FloorValue
	if floor == 0 {
		floor = DefaultFloorValue
	}

	rate := ComputeGrowthRate(in.CurrentValue, in.PredictedValue)
	outlook := EstimateDaysUntilOverflow(in.CurrentValue, in.PredictedValue, rate, ceiling)
	percentage := OverflowPercentage(in.CurrentValue, ceiling)

	return Report{
		Table:          in.Table,
		PredictedValue: in.PredictedValue,
		GrowthRate:     rate,
		GrowthPerDay:   rate.PerDay(),
		Series:         GenerateSeries(in.CurrentValue, rate, floor),
		Forecast: OverflowForecast{
			Outlook:      outlook,
			CurrentValue: in.CurrentValue,
			Ceiling:      ceiling,
		},
		Tier:                Classify(outlook),
		OverflowPercentage:  percentage,
		GaugeStatus:         GaugeStatus(percentage),
		RemainingCapacity:   ceiling - in.CurrentValue,
		WarningThreshold:    WarningThreshold(ceiling),
		PredictionOverflows: in.PredictedValue > ceiling,
	}
}

// TableResult is the outcome of projecting one table in a batch
type TableResult struct {
	Table  types.TableName
	Report *Report
	Err    error
}
