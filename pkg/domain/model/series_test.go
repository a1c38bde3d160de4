package model_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

func assertSeriesShape(t *testing.T, samples []model.Sample) {
	t.Helper()
	gt.Equal(t, len(samples), model.SeriesLength)
	gt.Equal(t, len(samples), 14)

	nowCount := 0
	for i, s := range samples {
		if i > 0 {
			gt.True(t, samples[i-1].OffsetDays < s.OffsetDays)
		}
		if s.OffsetDays == 0 {
			nowCount++
			gt.False(t, s.Projected)
		}
		gt.Equal(t, s.Projected, s.OffsetDays > 0)
	}
	gt.Equal(t, nowCount, 1)
}

func TestGenerateSeries(t *testing.T) {
	t.Run("offsets and labels", func(t *testing.T) {
		samples := model.GenerateSeries(2_000_000_000, model.ComputeGrowthRate(2_000_000_000, 2_160_000_000), model.DefaultFloorValue)
		assertSeriesShape(t, samples)

		offsets := make([]int, 0, len(samples))
		for _, s := range samples {
			offsets = append(offsets, s.OffsetDays)
		}
		gt.Equal(t, offsets, []int{-30, -25, -20, -15, -10, -5, 0, 5, 10, 15, 20, 25, 30, 35})

		gt.Equal(t, samples[0].Label, "Day -30")
		gt.Equal(t, samples[5].Label, "Day -5")
		gt.Equal(t, samples[6].Label, "Today")
		gt.Equal(t, samples[7].Label, "Day 5")
	})

	t.Run("values follow the growth rate", func(t *testing.T) {
		rate := model.ComputeGrowthRate(2_000_000_000, 2_160_000_000)
		samples := model.GenerateSeries(2_000_000_000, rate, model.DefaultFloorValue)

		gt.True(t, math.Abs(samples[0].Value-1_840_000_000) < 1)
		gt.Equal(t, samples[6].Value, float64(2_000_000_000))
		gt.True(t, math.Abs(samples[12].Value-2_160_000_000) < 1)
		gt.True(t, math.Abs(samples[13].Value-(2_000_000_000+float64(rate)*35)) < 1e-6)
	})

	t.Run("projected values may exceed the ceiling", func(t *testing.T) {
		samples := model.GenerateSeries(2_100_000_000, model.ComputeGrowthRate(2_100_000_000, 2_400_000_000), model.DefaultFloorValue)
		last := samples[len(samples)-1]
		gt.True(t, last.Projected)
		gt.True(t, last.Value > float64(model.Int32Ceiling))
	})

	t.Run("history is clamped at the floor", func(t *testing.T) {
		samples := model.GenerateSeries(1_100_000_000, model.GrowthRate(10_000_000), model.DefaultFloorValue)
		gt.Equal(t, samples[0].Value, float64(model.DefaultFloorValue))
		gt.Equal(t, samples[1].Value, float64(model.DefaultFloorValue))
		gt.True(t, math.Abs(samples[5].Value-1_050_000_000) < 1e-6)
	})

	t.Run("custom floor", func(t *testing.T) {
		samples := model.GenerateSeries(100, model.GrowthRate(10), 50)
		gt.Equal(t, samples[0].Value, float64(50))
		gt.Equal(t, samples[5].Value, float64(50))
	})
}

func TestGenerateSeriesInvariants(t *testing.T) {
	rates := []model.GrowthRate{
		-1e12, -5_000_000, -1, 0, 0.5, 1, 4_916_121.5666, 1e9,
	}
	currents := []int64{0, 999_999_999, 1_000_000_000, 2_000_000_000, 2_147_483_647, 3_000_000_000}

	for _, c := range currents {
		for _, r := range rates {
			samples := model.GenerateSeries(c, r, model.DefaultFloorValue)
			assertSeriesShape(t, samples)
			for _, s := range samples[:6] {
				gt.True(t, s.Value >= float64(model.DefaultFloorValue))
			}
		}
	}

	t.Run("each call returns a fresh slice", func(t *testing.T) {
		a := model.GenerateSeries(2_000_000_000, 1, model.DefaultFloorValue)
		b := model.GenerateSeries(2_000_000_000, 1, model.DefaultFloorValue)
		a[0].Value = 0
		gt.NotEqual(t, b[0].Value, float64(0))
	})
}
