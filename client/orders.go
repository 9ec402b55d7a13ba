package client

import (
	"context"
	"fmt"

	"github.com/pandiyanpvt/jsmart-admin-api/lifecycle"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// OrdersService covers orders, tracking and refunds. Status changes are
// guarded client-side against the same transition tables the server
// enforces; the local guard is a fast path, never a substitute for the
// server's check.
type OrdersService struct {
	client *Client
}

func (c *Client) Orders() *OrdersService {
	return &OrdersService{client: c}
}

func (s *OrdersService) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.client.do(ctx, "GET", "/admin/orders", nil, &orders)
	return orders, err
}

func (s *OrdersService) GetByID(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/orders/%d", id), nil, &order)
	return order, err
}

// NextStatuses returns the transitions the dashboard may offer for an order.
func (s *OrdersService) NextStatuses(order models.Order) []lifecycle.OrderStatus {
	return lifecycle.NextStatuses(lifecycle.OrderStatus(order.Status))
}

// UpdateStatus applies one transition. The request is rejected locally with
// *lifecycle.InvalidTransitionError before any network call if the target is
// not reachable from the order's current status.
func (s *OrdersService) UpdateStatus(ctx context.Context, order models.Order, target lifecycle.OrderStatus) (models.Order, error) {
	if !lifecycle.CanTransition(lifecycle.OrderStatus(order.Status), target) {
		return order, &lifecycle.InvalidTransitionError{From: order.Status, To: string(target)}
	}

	var updated models.Order
	err := s.client.do(ctx, "PUT", fmt.Sprintf("/admin/orders/%d/status", order.ID),
		map[string]string{"order_status": string(target)}, &updated)
	if err != nil {
		return order, err
	}
	return updated, nil
}

func (s *OrdersService) MarkPaid(ctx context.Context, id uint, paid bool) error {
	return s.client.do(ctx, "PUT", fmt.Sprintf("/admin/orders/%d/paid", id),
		map[string]bool{"is_paid": paid}, nil)
}

// GetTracking returns the status history, oldest first.
func (s *OrdersService) GetTracking(ctx context.Context, orderID uint) ([]models.OrderTrackingEntry, error) {
	var entries []models.OrderTrackingEntry
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/orders/%d/tracking", orderID), nil, &entries)
	return entries, err
}

type RefundsService struct {
	client *Client
}

func (c *Client) Refunds() *RefundsService {
	return &RefundsService{client: c}
}

func (s *RefundsService) GetAll(ctx context.Context) ([]models.Refund, error) {
	var refunds []models.Refund
	err := s.client.do(ctx, "GET", "/admin/refunds", nil, &refunds)
	return refunds, err
}

// NextStatuses returns the transitions the dashboard may offer for a refund.
func (s *RefundsService) NextStatuses(refund models.Refund) []lifecycle.RefundStatus {
	return lifecycle.NextRefundStatuses(lifecycle.RefundStatus(refund.Status))
}

// UpdateStatus applies one refund transition with the same local guard shape
// as orders.
func (s *RefundsService) UpdateStatus(ctx context.Context, refund models.Refund, target lifecycle.RefundStatus, comment string) (models.Refund, error) {
	if !lifecycle.CanTransitionRefund(lifecycle.RefundStatus(refund.Status), target) {
		return refund, &lifecycle.InvalidTransitionError{From: refund.Status, To: string(target)}
	}

	var updated models.Refund
	err := s.client.do(ctx, "PUT", fmt.Sprintf("/admin/refunds/%d/status", refund.ID),
		map[string]string{"status": string(target), "comment": comment}, &updated)
	if err != nil {
		return refund, err
	}
	return updated, nil
}

func (s *RefundsService) GetTracking(ctx context.Context, refundID uint) ([]models.RefundTrackingEntry, error) {
	var entries []models.RefundTrackingEntry
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/refunds/%d/tracking", refundID), nil, &entries)
	return entries, err
}
