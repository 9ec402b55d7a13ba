package client

import (
	"context"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// Filters holds the list screen's filter inputs. When any filter is active,
// exactly one dimension is sent to the server and pagination is disabled;
// precedence is search over category over brand over price range.
type Filters struct {
	Search     string
	CategoryID uint
	Brand      string
	MinPrice   float64
	MaxPrice   float64
}

func (f Filters) Active() bool {
	return f.Search != "" || f.CategoryID != 0 || f.Brand != "" || f.MinPrice > 0 || f.MaxPrice > 0
}

// ProductListResult is what a product list screen renders: either one page
// of the unfiltered catalog, or the full filtered set with paging disabled.
type ProductListResult struct {
	Items      []models.Product
	Paginated  bool
	Page       int
	TotalItems int64
	TotalPages int
}

// LoadProducts resolves the filter precedence and issues exactly one
// request.
func (s *ProductsService) Load(ctx context.Context, f Filters, page, pageSize int) (ProductListResult, error) {
	if f.Active() {
		var (
			items []models.Product
			err   error
		)
		switch {
		case f.Search != "":
			items, err = s.Search(ctx, f.Search)
		case f.CategoryID != 0:
			items, err = s.GetByCategory(ctx, f.CategoryID)
		case f.Brand != "":
			items, err = s.GetByBrand(ctx, f.Brand)
		default:
			items, err = s.GetByPriceRange(ctx, f.MinPrice, f.MaxPrice)
		}
		if err != nil {
			return ProductListResult{}, err
		}
		return ProductListResult{
			Items:      items,
			Paginated:  false,
			TotalItems: int64(len(items)),
		}, nil
	}

	result, err := s.GetPaginated(ctx, page, pageSize)
	if err != nil {
		return ProductListResult{}, err
	}
	return ProductListResult{
		Items:      result.Items,
		Paginated:  true,
		Page:       result.Page,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	}, nil
}
