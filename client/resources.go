package client

import (
	"context"
	"fmt"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// Flat CRUD services for the remaining list screens.

type CategoriesService struct {
	client *Client
}

func (c *Client) Categories() *CategoriesService {
	return &CategoriesService{client: c}
}

func (s *CategoriesService) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := s.client.do(ctx, "GET", "/admin/categories", nil, &categories)
	return categories, err
}

func (s *CategoriesService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/categories/%d", id), nil, nil)
}

type SuppliersService struct {
	client *Client
}

func (c *Client) Suppliers() *SuppliersService {
	return &SuppliersService{client: c}
}

func (s *SuppliersService) GetAll(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := s.client.do(ctx, "GET", "/admin/suppliers", nil, &suppliers)
	return suppliers, err
}

func (s *SuppliersService) Create(ctx context.Context, supplier models.Supplier) (models.Supplier, error) {
	var created models.Supplier
	err := s.client.do(ctx, "POST", "/admin/suppliers", supplier, &created)
	return created, err
}

func (s *SuppliersService) Update(ctx context.Context, id uint, supplier models.Supplier) (models.Supplier, error) {
	var updated models.Supplier
	err := s.client.do(ctx, "PUT", fmt.Sprintf("/admin/suppliers/%d", id), supplier, &updated)
	return updated, err
}

func (s *SuppliersService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/suppliers/%d", id), nil, nil)
}

type CustomersService struct {
	client *Client
}

func (c *Client) Customers() *CustomersService {
	return &CustomersService{client: c}
}

func (s *CustomersService) GetAll(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.client.do(ctx, "GET", "/admin/customers", nil, &customers)
	return customers, err
}

func (s *CustomersService) GetByID(ctx context.Context, id uint) (models.Customer, error) {
	var customer models.Customer
	err := s.client.do(ctx, "GET", fmt.Sprintf("/admin/customers/%d", id), nil, &customer)
	return customer, err
}

type AdminsService struct {
	client *Client
}

func (c *Client) Admins() *AdminsService {
	return &AdminsService{client: c}
}

// GetAll returns the admin accounts visible to the caller; the server
// filters by the viewer's role claim.
func (s *AdminsService) GetAll(ctx context.Context) ([]models.AdminUser, error) {
	var admins []models.AdminUser
	err := s.client.do(ctx, "GET", "/admin/admins", nil, &admins)
	return admins, err
}

// GetRoles returns the role id to display name mapping.
func (s *AdminsService) GetRoles(ctx context.Context) ([]models.UserRole, error) {
	var roles []models.UserRole
	err := s.client.do(ctx, "GET", "/admin/roles", nil, &roles)
	return roles, err
}

type DeliveryAreasService struct {
	client *Client
}

func (c *Client) DeliveryAreas() *DeliveryAreasService {
	return &DeliveryAreasService{client: c}
}

func (s *DeliveryAreasService) GetAll(ctx context.Context) ([]models.DeliveryArea, error) {
	var areas []models.DeliveryArea
	err := s.client.do(ctx, "GET", "/admin/delivery-areas", nil, &areas)
	return areas, err
}

func (s *DeliveryAreasService) Create(ctx context.Context, area models.DeliveryArea) (models.DeliveryArea, error) {
	var created models.DeliveryArea
	err := s.client.do(ctx, "POST", "/admin/delivery-areas", area, &created)
	return created, err
}

func (s *DeliveryAreasService) Update(ctx context.Context, id uint, area models.DeliveryArea) (models.DeliveryArea, error) {
	var updated models.DeliveryArea
	err := s.client.do(ctx, "PUT", fmt.Sprintf("/admin/delivery-areas/%d", id), area, &updated)
	return updated, err
}

func (s *DeliveryAreasService) Delete(ctx context.Context, id uint) error {
	return s.client.do(ctx, "DELETE", fmt.Sprintf("/admin/delivery-areas/%d", id), nil, nil)
}
