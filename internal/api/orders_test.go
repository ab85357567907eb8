package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abcretail/internal/domain"
	apperrors "abcretail/internal/errors"
)

const sampleOrderBody = `{
	"id": "ord-1",
	"customerId": "cust-1",
	"productId": "prod-1",
	"productName": "Espresso Machine",
	"quantity": 2,
	"unitPrice": 4500,
	"totalPrice": 999,
	"orderDateUtc": "2024-03-10T08:30:00+02:00",
	"status": "Processing"
}`

func TestCreateOrder_SendsOnlyIdentifyingFields(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orders", r.URL.Path)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleOrderBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	order, err := client.CreateOrder(context.Background(), "cust-1", "prod-1", 2)
	require.NoError(t, err)

	assert.Len(t, captured, 3)
	assert.Equal(t, "cust-1", captured["customerId"])
	assert.Equal(t, "prod-1", captured["productId"])
	assert.Equal(t, float64(2), captured["quantity"])

	// Derived fields come back from the backend, never computed here.
	assert.Equal(t, "ord-1", order.OrderID)
	assert.Equal(t, 4500, order.UnitPrice)
	assert.Equal(t, domain.OrderStatusProcessing, order.Status)
}

func TestGetOrder_TotalRecomputedFromQuantityAndUnitPrice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleOrderBody))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	order, err := client.GetOrder(context.Background(), "ord-1")
	require.NoError(t, err)
	require.NotNil(t, order)

	// The wire said totalPrice 999; the mapped entity must not trust it.
	assert.Equal(t, 9000, order.TotalPrice)
	assert.Equal(t, order.Quantity*order.UnitPrice, order.TotalPrice)
}

func TestGetOrder_DefaultsAbsentStatusToSubmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"ord-2","customerId":"c","productId":"p","quantity":1,"unitPrice":100,"orderDateUtc":"2024-03-10T08:30:00Z"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	order, err := client.GetOrder(context.Background(), "ord-2")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.OrderStatusSubmitted, order.Status)
}

func TestGetOrder_NotFoundReturnsAbsence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	order, err := client.GetOrder(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestGetOrder_MalformedBodyIsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "ord-1", "quantity": `))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetOrder(context.Background(), "ord-1")
	_, ok := apperrors.IsDecodeError(err)
	assert.True(t, ok, "expected DecodeError, got %T: %v", err, err)
}

func TestGetOrders_EmptyCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	orders, err := client.GetOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestUpdateOrderStatus_SendsExactPatch(t *testing.T) {
	var method, path, body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		body = strings.TrimSpace(string(data))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.UpdateOrderStatus(context.Background(), "ord-1", domain.OrderStatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/api/orders/ord-1/status", path)
	assert.Equal(t, `{"status":"Completed"}`, body)
}

func TestUpdateOrderStatus_NonSuccessIsRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"invalid transition"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.UpdateOrderStatus(context.Background(), "ord-1", "Completed")
	re, ok := apperrors.IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, re.StatusCode)
	assert.Contains(t, re.Message, "invalid transition")
}

func TestDeleteOrder(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	require.NoError(t, client.DeleteOrder(context.Background(), "ord-9"))
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/orders/ord-9", path)
}
