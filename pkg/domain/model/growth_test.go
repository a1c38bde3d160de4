package model_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
)

func TestComputeGrowthRate(t *testing.T) {
	t.Run("prediction at the ceiling", func(t *testing.T) {
		rate := model.ComputeGrowthRate(2_000_000_000, 2_147_483_647)
		gt.True(t, math.Abs(float64(rate)-4_916_121.5666) < 0.001)
		gt.Equal(t, rate.PerDay(), int64(4_916_122))
	})

	t.Run("zero growth", func(t *testing.T) {
		rate := model.ComputeGrowthRate(2_000_000_000, 2_000_000_000)
		gt.Equal(t, rate, model.GrowthRate(0))
		gt.False(t, rate.IsGrowing())
	})

	t.Run("shrinking max id", func(t *testing.T) {
		rate := model.ComputeGrowthRate(2_000_000_000, 1_970_000_000)
		gt.Equal(t, rate, model.GrowthRate(-1_000_000))
		gt.False(t, rate.IsGrowing())
	})

	t.Run("scaling by the horizon recovers the delta", func(t *testing.T) {
		pairs := [][2]int64{
			{0, 0},
			{2_000_000_000, 2_160_000_000},
			{1_500_000_000, 1_499_999_999},
			{-100, 200},
			{123_456_789, 987_654_321},
		}
		for _, p := range pairs {
			rate := model.ComputeGrowthRate(p[0], p[1])
			gt.Equal(t, float64(rate), (float64(p[1])-float64(p[0]))/30)
			gt.True(t, math.Abs(float64(rate)*30-float64(p[1]-p[0])) < 1e-3)
		}
	})
}

func TestWarningThreshold(t *testing.T) {
	gt.Equal(t, model.WarningThreshold(model.Int32Ceiling), 0.9*2147483647)
}
