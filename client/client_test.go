package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandiyanpvt/jsmart-admin-api/lifecycle"
	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

// recordingServer captures the path of every request and answers each with an
// empty JSON array.
func recordingServer(t *testing.T) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestLoadResolvesFilterPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		filters  Filters
		wantPath string
	}{
		{"search wins over everything", Filters{Search: "milk", CategoryID: 3, Brand: "Acme", MinPrice: 1, MaxPrice: 9}, "/admin/products/search"},
		{"category wins over brand", Filters{CategoryID: 3, Brand: "Acme"}, "/admin/products/category/3"},
		{"brand wins over price range", Filters{Brand: "Acme", MinPrice: 1, MaxPrice: 9}, "/admin/products/brand/Acme"},
		{"price range alone", Filters{MinPrice: 1, MaxPrice: 9}, "/admin/products/price-range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, paths := recordingServer(t)
			c := New(srv.URL)

			result, err := c.Products().Load(context.Background(), tt.filters, 1, 10)
			require.NoError(t, err)

			require.Len(t, *paths, 1, "a filtered load issues exactly one request")
			assert.Equal(t, tt.wantPath, (*paths)[0])
			assert.False(t, result.Paginated)
		})
	}
}

func TestLoadWithoutFiltersUsesPagination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/products/paginated", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		json.NewEncoder(w).Encode(PaginatedProducts{
			Items:      []models.Product{{ID: 11}},
			TotalItems: 21,
			TotalPages: 3,
			Page:       2,
		})
	}))
	t.Cleanup(srv.Close)

	result, err := New(srv.URL).Products().Load(context.Background(), Filters{}, 2, 10)
	require.NoError(t, err)
	assert.True(t, result.Paginated)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	require.Len(t, result.Items, 1)
}

func TestUpdateStatusGuardRejectsBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	order := models.Order{ID: 500, Status: "PENDING"}
	_, err := New(srv.URL).Orders().UpdateStatus(context.Background(), order, lifecycle.OrderDelivered)

	var invalid *lifecycle.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "PENDING", invalid.From)
	assert.Equal(t, "DELIVERED", invalid.To)
	assert.Zero(t, calls.Load(), "a locally rejected transition must not reach the server")
}

func TestUpdateStatusSendsValidTransition(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/admin/orders/500/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PROCESSING", body["order_status"])

		json.NewEncoder(w).Encode(models.Order{ID: 500, Status: "PROCESSING"})
	}))
	t.Cleanup(srv.Close)

	order := models.Order{ID: 500, Status: "PENDING"}
	updated, err := New(srv.URL).Orders().UpdateStatus(context.Background(), order, lifecycle.OrderProcessing)
	require.NoError(t, err)
	assert.Equal(t, "PROCESSING", updated.Status)
}

func TestAPIErrorCarriesServerCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"invalid transition from SHIPPED to PENDING","code":"invalid_transition"}`))
	}))
	t.Cleanup(srv.Close)

	// SHIPPED -> DELIVERED passes the local guard; the server answer decides.
	order := models.Order{ID: 7, Status: "SHIPPED"}
	_, err := New(srv.URL).Orders().UpdateStatus(context.Background(), order, lifecycle.OrderDelivered)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "invalid_transition", apiErr.Code)
}

func TestAdjustValidatesLocally(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("{}"))
	}))
	t.Cleanup(srv.Close)

	inv := New(srv.URL).Inventory()

	_, err := inv.Adjust(context.Background(), StockAdjustment{ProductID: 1, Type: models.StockAdjustAdd, Quantity: 0, Reason: "recount"})
	assert.ErrorIs(t, err, ErrZeroQuantity)

	_, err = inv.Adjust(context.Background(), StockAdjustment{ProductID: 1, Type: models.StockAdjustAdd, Quantity: 5})
	assert.ErrorIs(t, err, ErrMissingReason)

	assert.Zero(t, calls.Load())

	_, err = inv.Adjust(context.Background(), StockAdjustment{ProductID: 1, Type: models.StockAdjustAdd, Quantity: 5, Reason: "recount"})
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestAuthHeadersAreSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "key-456", r.Header.Get("X-API-KEY"))
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithToken("token-123"), WithAPIKey("key-456"))
	_, err := c.Categories().GetAll(context.Background())
	require.NoError(t, err)
}
