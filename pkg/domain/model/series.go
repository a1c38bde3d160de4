package model

import (
	"fmt"
	"math"
)

const (
	pastSamples    = 6
	pastStepDays   = 5
	futureSamples  = 7
	futureStepDays = 5

	// SeriesLength is the number of samples GenerateSeries returns
	SeriesLength = pastSamples + 1 + futureSamples
)

// Sample is one point of the chart series
type Sample struct {
	Label      string  `json:"label"`
	Value      float64 `json:"value"`
	OffsetDays int     `json:"offset_days"`
	Projected  bool    `json:"projected"`
}

// GenerateSeries builds the chart series around the current max id: six
// synthetic historical points every 5 days from -30 to -5, the current value,
// and seven projected points every 5 days up to +35. Historical values are
// clamped at floor. Projected values are not clamped and may exceed the
// ceiling.
func GenerateSeries(current int64, rate GrowthRate, floor int64) []Sample {
	samples := make([]Sample, 0, SeriesLength)
	base := float64(current)

	for i := 0; i < pastSamples; i++ {
		offset := -HorizonDays + pastStepDays*i
		value := base - float64(rate)*float64(HorizonDays-pastStepDays*i)
		samples = append(samples, Sample{
			Label:      dayLabel(offset),
			Value:      math.Max(float64(floor), value),
			OffsetDays: offset,
		})
	}

	samples = append(samples, Sample{
		Label:      dayLabel(0),
		Value:      base,
		OffsetDays: 0,
	})

	for i := 0; i < futureSamples; i++ {
		offset := futureStepDays * (i + 1)
		samples = append(samples, Sample{
			Label:      dayLabel(offset),
			Value:      base + float64(rate)*float64(offset),
			OffsetDays: offset,
			Projected:  true,
		})
	}

	return samples
}

func dayLabel(offset int) string {
	if offset == 0 {
		return "Today"
	}
	return fmt.Sprintf("Day %d", offset)
}
