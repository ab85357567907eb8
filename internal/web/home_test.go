package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"abcretail/internal/domain"
	"abcretail/internal/testutil"
)

func TestHandleDashboard(t *testing.T) {
	backend := &testutil.MockFunctionsAPI{
		GetProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			products := make([]domain.Product, 8)
			for i := range products {
				products[i] = domain.Product{ProductID: "p", ProductName: "Item"}
			}
			return products, nil
		},
		GetCustomersFunc: func(ctx context.Context) ([]domain.Customer, error) {
			return []domain.Customer{{CustomerID: "c-1"}}, nil
		},
		GetOrdersFunc: func(ctx context.Context) ([]domain.Order, error) {
			return []domain.Order{{OrderID: "o-1"}, {OrderID: "o-2"}}, nil
		},
	}
	ctrl := newTestController(backend)

	rec := httptest.NewRecorder()
	ctrl.HandleDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, float64(8), resp["productCount"])
	assert.Equal(t, float64(1), resp["customerCount"])
	assert.Equal(t, float64(2), resp["orderCount"])
	assert.Len(t, resp["featuredProducts"], 5)
}

// A dead backend degrades the dashboard to zero counts instead of an error page.
func TestHandleDashboard_DegradesOnBackendFailure(t *testing.T) {
	backend := &testutil.MockFunctionsAPI{
		GetProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return nil, errors.New("backend down")
		},
		GetCustomersFunc: func(ctx context.Context) ([]domain.Customer, error) {
			return nil, errors.New("backend down")
		},
		GetOrdersFunc: func(ctx context.Context) ([]domain.Order, error) {
			return nil, errors.New("backend down")
		},
	}
	ctrl := newTestController(backend)

	rec := httptest.NewRecorder()
	ctrl.HandleDashboard(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, float64(0), resp["productCount"])
	assert.Equal(t, float64(0), resp["customerCount"])
	assert.Equal(t, float64(0), resp["orderCount"])
}
