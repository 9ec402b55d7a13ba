// Package lifecycle holds the order and refund status machines. Both the API
// handlers and the client SDK validate transitions against the same tables,
// so a transition the dashboard offers is exactly a transition the server
// will accept.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// orderFlow defines the valid outgoing transitions per status. Terminal
// statuses map to an empty slice.
var orderFlow = map[OrderStatus][]OrderStatus{
	OrderPending:    {OrderProcessing, OrderCancelled},
	OrderProcessing: {OrderShipped, OrderCancelled},
	OrderShipped:    {OrderDelivered},
	OrderDelivered:  {OrderCompleted},
	OrderCompleted:  {},
	OrderCancelled:  {},
}

// InvalidTransitionError is returned when a requested status change is not
// reachable from the current status.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

var ErrUnknownStatus = errors.New("unknown status")

func (s OrderStatus) String() string {
	return string(s)
}

// NextStatuses returns the statuses reachable from s. Unknown and terminal
// statuses both yield an empty set; absence of options is the signal, not an
// error.
func NextStatuses(s OrderStatus) []OrderStatus {
	next, ok := orderFlow[s]
	if !ok {
		return nil
	}
	return next
}

// CanTransition reports whether target is reachable from current.
func CanTransition(current, target OrderStatus) bool {
	for _, s := range NextStatuses(current) {
		if s == target {
			return true
		}
	}
	return false
}

// Transition moves the order to target and appends a tracking entry stamped
// at now. On an invalid transition the order is left untouched and an
// *InvalidTransitionError is returned.
func Transition(order *models.Order, target OrderStatus, now time.Time) (models.OrderTrackingEntry, error) {
	if !CanTransition(OrderStatus(order.Status), target) {
		return models.OrderTrackingEntry{}, &InvalidTransitionError{From: order.Status, To: string(target)}
	}
	order.Status = string(target)
	return models.OrderTrackingEntry{
		OrderID:   order.ID,
		Status:    string(target),
		Timestamp: now,
	}, nil
}

// ParseOrderStatus maps a request string to a known status, case-insensitive.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(OrderPending):
		return OrderPending, nil
	case string(OrderProcessing):
		return OrderProcessing, nil
	case string(OrderShipped):
		return OrderShipped, nil
	case string(OrderDelivered):
		return OrderDelivered, nil
	case string(OrderCompleted):
		return OrderCompleted, nil
	case string(OrderCancelled):
		return OrderCancelled, nil
	default:
		return "", ErrUnknownStatus
	}
}
