package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/idwatch/pkg/domain/types"
)

func TestTableNameValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   types.TableName
		wantErr bool
	}{
		{"plain", "orders", false},
		{"schema qualified", "public.orders", false},
		{"underscore and digits", "order_items_2024", false},
		{"empty", "", true},
		{"slash", "orders/items", true},
		{"space", "order items", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestTierIDIsValid(t *testing.T) {
	tests := []struct {
		id       types.TierID
		expected bool
	}{
		{types.TierCritical, true},
		{types.TierHigh, true},
		{types.TierModerate, true},
		{types.TierLow, true},
		{types.TierID(""), false},
		{types.TierID("CRITICAL"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			gt.Equal(t, tt.id.IsValid(), tt.expected)
		})
	}
}

func TestNewReportID(t *testing.T) {
	id1, err := types.NewReportID()
	gt.NoError(t, err)
	id2, err := types.NewReportID()
	gt.NoError(t, err)

	gt.NotEqual(t, id1, id2)
	gt.Equal(t, len(id1.String()), 36)
}
