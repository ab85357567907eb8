package web

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "abcretail/internal/errors"

	json "github.com/goccy/go-json"
)

type orderCreateForm struct {
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
}

type orderStatusForm struct {
	Status string `json:"status"`
}

func (c *Controller) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.backend.GetOrders(r.Context())
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}

	out := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOrderResponse(order))
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	order, err := c.backend.GetOrder(r.Context(), id)
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}
	if order == nil {
		c.writeNotFound(w, "order not found")
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

// HandleCreateOrder forwards the three identifying fields; stock checks,
// pricing and queue dispatch all happen backend-side in one operation.
func (c *Controller) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var form orderCreateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	if strings.TrimSpace(form.CustomerID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerId",
			Message: "customerId is required",
		})
	}
	if strings.TrimSpace(form.ProductID) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId is required",
		})
	}
	if form.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		})
	}
	if len(details) > 0 {
		c.writeValidationError(w, "order validation failed", details...)
		return
	}

	order, err := c.backend.CreateOrder(r.Context(), form.CustomerID, form.ProductID, form.Quantity)
	if err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("order created",
		zap.String("orderId", order.OrderID),
		zap.Int("quantity", order.Quantity))
	c.writeJSON(w, http.StatusCreated, toOrderResponse(*order))
}

func (c *Controller) HandleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	id := chi.URLParam(r, "id")

	var form orderStatusForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	// Target-state validity is the backend's call; only emptiness is checked.
	if strings.TrimSpace(form.Status) == "" {
		c.writeValidationError(w, "status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must not be empty",
		})
		return
	}

	if err := c.backend.UpdateOrderStatus(r.Context(), id, form.Status); err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("order status updated",
		zap.String("orderId", id),
		zap.String("status", form.Status))
	c.writeJSON(w, http.StatusOK, map[string]string{
		"orderId": id,
		"status":  form.Status,
	})
}

func (c *Controller) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.backend.DeleteOrder(r.Context(), id); err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetProductPrice backs the order form's price lookup. It responds 200
// with success=false for a missing product so the form script can handle it
// without special-casing status codes.
func (c *Controller) HandleGetProductPrice(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("productId")
	if strings.TrimSpace(productID) == "" {
		c.writeValidationError(w, "productId is required", apperrors.ValidationDetail{
			Field:   "productId",
			Message: "productId query parameter must not be empty",
		})
		return
	}

	product, err := c.backend.GetProduct(r.Context(), productID)
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}
	if product == nil {
		c.writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": false,
			"message": "product not found",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"price":       product.Price,
		"stock":       product.StockAvailable,
		"productName": product.ProductName,
	})
}
