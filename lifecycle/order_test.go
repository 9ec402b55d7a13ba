package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func TestNextStatuses(t *testing.T) {
	cases := []struct {
		from OrderStatus
		want []OrderStatus
	}{
		{OrderPending, []OrderStatus{OrderProcessing, OrderCancelled}},
		{OrderProcessing, []OrderStatus{OrderShipped, OrderCancelled}},
		{OrderShipped, []OrderStatus{OrderDelivered}},
		{OrderDelivered, []OrderStatus{OrderCompleted}},
		{OrderCompleted, []OrderStatus{}},
		{OrderCancelled, []OrderStatus{}},
	}
	for _, tc := range cases {
		assert.ElementsMatch(t, tc.want, NextStatuses(tc.from), "from %s", tc.from)
	}
}

func TestNextStatusesUnknown(t *testing.T) {
	assert.Empty(t, NextStatuses(OrderStatus("SOMETHING_ELSE")))
	assert.Empty(t, NextStatuses(OrderStatus("")))
}

func TestTransitionAppendsTracking(t *testing.T) {
	order := &models.Order{ID: 500, Status: string(OrderPending)}
	now := time.Now()

	entry, err := Transition(order, OrderProcessing, now)
	require.NoError(t, err)
	assert.Equal(t, string(OrderProcessing), order.Status)
	assert.Equal(t, uint(500), entry.OrderID)
	assert.Equal(t, string(OrderProcessing), entry.Status)
	assert.Equal(t, now, entry.Timestamp)
}

func TestTransitionRejectsUnreachable(t *testing.T) {
	// Scenario: #500 goes PENDING -> PROCESSING, then DELIVERED is refused.
	order := &models.Order{ID: 500, Status: string(OrderPending)}

	_, err := Transition(order, OrderProcessing, time.Now())
	require.NoError(t, err)

	_, err = Transition(order, OrderDelivered, time.Now())
	require.Error(t, err)

	var ite *InvalidTransitionError
	require.ErrorAs(t, err, &ite)
	assert.Equal(t, string(OrderProcessing), ite.From)
	assert.Equal(t, string(OrderDelivered), ite.To)
	// Order untouched by the failed attempt.
	assert.Equal(t, string(OrderProcessing), order.Status)
}

func TestTerminalStatusesRejectEverything(t *testing.T) {
	for _, terminal := range []OrderStatus{OrderCompleted, OrderCancelled} {
		for _, target := range []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCompleted, OrderCancelled} {
			order := &models.Order{ID: 1, Status: string(terminal)}
			_, err := Transition(order, target, time.Now())
			assert.Error(t, err, "%s -> %s must be rejected", terminal, target)
			assert.Equal(t, string(terminal), order.Status)
		}
	}
}

func TestTrackingTimestampsMonotonic(t *testing.T) {
	order := &models.Order{ID: 7, Status: string(OrderPending)}
	var entries []models.OrderTrackingEntry

	for _, target := range []OrderStatus{OrderProcessing, OrderShipped, OrderDelivered, OrderCompleted} {
		entry, err := Transition(order, target, time.Now())
		require.NoError(t, err)
		entries = append(entries, entry)
	}

	require.Len(t, entries, 4)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
	}
}

func TestParseOrderStatus(t *testing.T) {
	got, err := ParseOrderStatus("processing")
	require.NoError(t, err)
	assert.Equal(t, OrderProcessing, got)

	got, err = ParseOrderStatus(" SHIPPED ")
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, got)

	_, err = ParseOrderStatus("teleported")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
