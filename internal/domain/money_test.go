package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Money
	}{
		{"number", `19.99`, "19.99"},
		{"string", `"19.99"`, "19.99"},
		{"integer", `20`, "20"},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			require.NoError(t, json.Unmarshal([]byte(tt.in), &m))
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestMoneyFloat64(t *testing.T) {
	assert.Equal(t, 19.99, Money("19.99").Float64())
	assert.Equal(t, 0.0, Money("").Float64())
	assert.Equal(t, 0.0, Money("not a number").Float64())
}

func TestMoneyDisplay(t *testing.T) {
	assert.Equal(t, "$19.99", Money("19.99").Display())
	assert.Equal(t, "$0.00", Money("").Display())
	assert.Equal(t, "$5.00", Money("5").Display())
}

func TestMoneyRoundTrip(t *testing.T) {
	item := Item{Title: "Drill", DailyPrice: "12.50", SecurityDeposit: "0"}
	data, err := json.Marshal(item)
	require.NoError(t, err)

	var back Item
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, item.DailyPrice, back.DailyPrice)
}

func TestItemCanBook(t *testing.T) {
	owner := &UserSummary{ID: "owner-1", Role: RoleOwner}
	renter := &UserSummary{ID: "renter-1", Role: RoleRenter}
	item := Item{ID: "item-1", OwnerID: "owner-1"}

	assert.False(t, item.CanBook(nil))
	assert.False(t, item.CanBook(owner))
	assert.True(t, item.CanBook(renter))
}
