package client

import (
	"context"
	"errors"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// Client-side validation errors for the stock adjustment form; caught before
// any network call.
var (
	ErrZeroQuantity  = errors.New("adjustment quantity must be greater than zero")
	ErrMissingReason = errors.New("adjustment reason is required")
)

type InventoryService struct {
	client *Client
}

func (c *Client) Inventory() *InventoryService {
	return &InventoryService{client: c}
}

// InventoryItem mirrors the server's inventory row.
type InventoryItem struct {
	models.Product
	IsLowStock bool `json:"is_low_stock"`
}

func (s *InventoryService) GetAll(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	err := s.client.do(ctx, "GET", "/admin/inventory", nil, &items)
	return items, err
}

type StockAdjustment struct {
	ProductID uint   `json:"product_id"`
	Type      string `json:"type"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"`
}

// Adjust submits one stock adjustment. Zero quantity and missing reason are
// rejected locally before submission.
func (s *InventoryService) Adjust(ctx context.Context, adj StockAdjustment) (models.StockLog, error) {
	if adj.Quantity <= 0 {
		return models.StockLog{}, ErrZeroQuantity
	}
	if adj.Reason == "" {
		return models.StockLog{}, ErrMissingReason
	}

	var logEntry models.StockLog
	err := s.client.do(ctx, "POST", "/admin/inventory/adjust", adj, &logEntry)
	return logEntry, err
}

func (s *InventoryService) GetStockLogs(ctx context.Context) ([]models.StockLog, error) {
	var logs []models.StockLog
	err := s.client.do(ctx, "GET", "/admin/inventory/stock-logs", nil, &logs)
	return logs, err
}
