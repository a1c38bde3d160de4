package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/domain/model"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

func TestShouldNotify(t *testing.T) {
	critical := model.Classify(model.Days(3))
	high := model.Classify(model.Days(20))
	low := model.Classify(model.Safe())

	t.Run("first observation of an alertable tier", func(t *testing.T) {
		gt.True(t, model.ShouldNotify(nil, high))
	})

	t.Run("first observation of low tier", func(t *testing.T) {
		gt.False(t, model.ShouldNotify(nil, low))
	})

	t.Run("escalation", func(t *testing.T) {
		prev := &model.AlertState{Table: "orders", TierID: types.TierHigh}
		gt.True(t, model.ShouldNotify(prev, critical))
	})

	t.Run("same tier", func(t *testing.T) {
		prev := &model.AlertState{Table: "orders", TierID: types.TierHigh}
		gt.False(t, model.ShouldNotify(prev, high))
	})

	t.Run("de-escalation", func(t *testing.T) {
		prev := &model.AlertState{Table: "orders", TierID: types.TierCritical}
		gt.False(t, model.ShouldNotify(prev, high))
	})

	t.Run("unknown stored tier is treated as low", func(t *testing.T) {
		prev := &model.AlertState{Table: "orders", TierID: "bogus"}
		gt.Equal(t, prev.Tier().ID, types.TierLow)
		gt.True(t, model.ShouldNotify(prev, high))
	})
}
