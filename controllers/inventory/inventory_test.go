package inventorycontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func TestApplyAdjustmentAdd(t *testing.T) {
	got, err := ApplyAdjustment(8, models.StockAdjustAdd, 5)
	require.NoError(t, err)
	assert.Equal(t, 13, got)

	got, err = ApplyAdjustment(0, models.StockAdjustAdd, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestApplyAdjustmentRemoveClampsAtZero(t *testing.T) {
	cases := []struct {
		current, qty, want int
	}{
		{10, 3, 7},
		{10, 10, 0},
		{5, 9, 0},
		{0, 1, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		got, err := ApplyAdjustment(tc.current, models.StockAdjustRemove, tc.qty)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "remove %d from %d", tc.qty, tc.current)
		assert.GreaterOrEqual(t, got, 0)
	}
}

func TestApplyAdjustmentUnknownType(t *testing.T) {
	got, err := ApplyAdjustment(4, "transfer", 2)
	assert.Error(t, err)
	assert.Equal(t, 4, got)
}

func TestLowStockFlagClearsAfterAdd(t *testing.T) {
	// Scenario: stock 8 with min level 10 is low; adding 5 clears the flag.
	p := models.Product{Stock: 8, MinStockLevel: 10}
	require.True(t, p.LowStock())

	next, err := ApplyAdjustment(p.Stock, models.StockAdjustAdd, 5)
	require.NoError(t, err)
	p.Stock = next

	assert.Equal(t, 13, p.Stock)
	assert.False(t, p.LowStock())
}
