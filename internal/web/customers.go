package web

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"abcretail/internal/domain"
	apperrors "abcretail/internal/errors"

	json "github.com/goccy/go-json"
)

type customerForm struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

func (c *Controller) HandleListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.backend.GetCustomers(r.Context())
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}

	out := make([]customerResponse, 0, len(customers))
	for _, customer := range customers {
		out = append(out, toCustomerResponse(customer))
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleGetCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	customer, err := c.backend.GetCustomer(r.Context(), id)
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}
	if customer == nil {
		c.writeNotFound(w, "customer not found")
		return
	}

	c.writeJSON(w, http.StatusOK, toCustomerResponse(*customer))
}

func (c *Controller) HandleCreateCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var form customerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCustomerForm(form); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	customer := domain.NewCustomer()
	applyCustomerForm(&customer, form)

	created, err := c.backend.CreateCustomer(r.Context(), customer)
	if err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("customer created", zap.String("customerId", created.CustomerID))
	c.writeJSON(w, http.StatusCreated, toCustomerResponse(*created))
}

func (c *Controller) HandleUpdateCustomer(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	id := chi.URLParam(r, "id")

	var form customerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := validateCustomerForm(form); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	customer := domain.Customer{CustomerID: id}
	applyCustomerForm(&customer, form)

	updated, err := c.backend.UpdateCustomer(r.Context(), id, customer)
	if err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("customer updated", zap.String("customerId", id))
	c.writeJSON(w, http.StatusOK, toCustomerResponse(*updated))
}

func (c *Controller) HandleDeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.backend.DeleteCustomer(r.Context(), id); err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func applyCustomerForm(customer *domain.Customer, form customerForm) {
	customer.Name = form.Name
	customer.Surname = form.Surname
	customer.Username = form.Username
	customer.Email = form.Email
	customer.ShippingAddress = form.ShippingAddress
}

func validateCustomerForm(form customerForm) error {
	var details []apperrors.ValidationDetail

	if strings.TrimSpace(form.Name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(form.Name) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "name",
			Message: "name cannot exceed 100 characters",
		})
	}

	if strings.TrimSpace(form.Surname) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "surname",
			Message: "surname is required",
		})
	} else if len(form.Surname) > 100 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "surname",
			Message: "surname cannot exceed 100 characters",
		})
	}

	if len(form.Username) < 3 || len(form.Username) > 50 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "username",
			Message: "username must be between 3 and 50 characters",
		})
	}

	if strings.TrimSpace(form.Email) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email is required",
		})
	} else if _, err := mail.ParseAddress(form.Email); err != nil || len(form.Email) > 200 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must be a valid address of at most 200 characters",
		})
	}

	if strings.TrimSpace(form.ShippingAddress) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "shippingAddress",
			Message: "shippingAddress is required",
		})
	} else if len(form.ShippingAddress) > 500 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "shippingAddress",
			Message: "shippingAddress cannot exceed 500 characters",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("customer validation failed", details...)
	}
	return nil
}
