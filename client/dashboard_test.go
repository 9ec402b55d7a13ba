package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pandiyanpvt/jsmart-admin-api/models"
)

func TestLoadDashboardIsolatesSectionFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/messages":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"database unavailable"}`))
		case "/admin/admins":
			json.NewEncoder(w).Encode([]models.AdminUser{{ID: 1, Name: "Priya"}, {ID: 2, Name: "Arun"}})
		default:
			w.Write([]byte("[]"))
		}
	}))
	t.Cleanup(srv.Close)

	dash, err := New(srv.URL).LoadDashboard(context.Background())
	require.NoError(t, err, "one failed section must not fail the whole load")

	// The failed section renders empty with its error recorded.
	assert.Empty(t, dash.Messages)
	var apiErr *APIError
	require.ErrorAs(t, dash.Errors["messages"], &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)

	// Sibling sections are unaffected.
	require.Len(t, dash.Admins, 2)
	assert.Equal(t, "Priya", dash.Admins[0].Name)
	assert.NotContains(t, dash.Errors, "admins")
	assert.NotContains(t, dash.Errors, "orders")
}

func TestLoadDashboardAllSectionsSucceed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/admin/orders":
			json.NewEncoder(w).Encode([]models.Order{{ID: 500, Status: "PENDING"}})
		default:
			w.Write([]byte("[]"))
		}
	}))
	t.Cleanup(srv.Close)

	dash, err := New(srv.URL).LoadDashboard(context.Background())
	require.NoError(t, err)
	assert.Empty(t, dash.Errors)
	require.Len(t, dash.Orders, 1)
	assert.Equal(t, "PENDING", dash.Orders[0].Status)
}

func TestLoadDashboardHonoursCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dash, err := New(srv.URL).LoadDashboard(ctx)
	require.Error(t, err)
	assert.Empty(t, dash.Admins)
}

