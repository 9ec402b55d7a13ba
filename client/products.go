package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

type ProductsService struct {
	client *Client
}

func (c *Client) Products() *ProductsService {
	return &ProductsService{client: c}
}

func (s *ProductsService) GetAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.client.do(ctx, "GET", "/admin/products", nil, &products)
	return products, err
}

func (s *ProductsService) GetByID(ctx context.Context, id uint) (models.Product, error) {
	var product models.Product
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/products/%d", id), nil, &product)
	return product, err
}

// PaginatedProducts mirrors the server's page envelope.
type PaginatedProducts struct {
	Items      []models.Product `json:"items"`
	TotalItems int64            `json:"total_items"`
	TotalPages int              `json:"total_pages"`
	Page       int              `json:"page"`
}

func (s *ProductsService) GetPaginated(ctx context.Context, page, pageSize int) (PaginatedProducts, error) {
	var result PaginatedProducts
	path := fmt.Sprintf("/admin/products/paginated?page=%d&page_size=%d", page, pageSize)
	err := s.client.do(ctx, "GET", path, nil, &result)
	return result, err
}

func (s *ProductsService) Search(ctx context.Context, q string) ([]models.Product, error) {
	var products []models.Product
	err := s.client.do(ctx, "GET", "/admin/products/search?q="+url.QueryEscape(q), nil, &products)
	return products, err
}

func (s *ProductsService) GetByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/products/category/%d", categoryID), nil, &products)
	return products, err
}

func (s *ProductsService) GetByBrand(ctx context.Context, brand string) ([]models.Product, error) {
	var products []models.Product
	err := s.client.do(ctx, "GET", "/admin/products/brand/"+url.PathEscape(brand), nil, &products)
	return products, err
}

func (s *ProductsService) GetByPriceRange(ctx context.Context, min, max float64) ([]models.Product, error) {
	var products []models.Product
	path := "/admin/products/price-range?min=" + strconv.FormatFloat(min, 'f', -1, 64) +
		"&max=" + strconv.FormatFloat(max, 'f', -1, 64)
	err := s.client.do(ctx, "GET", path, nil, &products)
	return products, err
}

func (s *ProductsService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/products/%d", id), nil, nil)
}
