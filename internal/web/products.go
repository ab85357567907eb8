package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"abcretail/internal/api"
	"abcretail/internal/domain"
	apperrors "abcretail/internal/errors"
)

func (c *Controller) HandleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := c.backend.GetProducts(r.Context())
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}
	c.writeJSON(w, http.StatusOK, out)
}

func (c *Controller) HandleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := c.backend.GetProduct(r.Context(), id)
	if err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}
	if product == nil {
		c.writeNotFound(w, "product not found")
		return
	}

	c.writeJSON(w, http.StatusOK, toProductResponse(*product))
}

func (c *Controller) HandleCreateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	product, image, ok := c.parseProductForm(w, r)
	if !ok {
		return
	}

	base := domain.NewProduct()
	base.ProductName = product.ProductName
	base.Description = product.Description
	base.Price = product.Price
	base.StockAvailable = product.StockAvailable
	base.ImageURL = product.ImageURL

	created, err := c.backend.CreateProduct(r.Context(), base, image)
	if err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("product created", zap.String("productId", created.ProductID))
	c.writeJSON(w, http.StatusCreated, toProductResponse(*created))
}

func (c *Controller) HandleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	id := chi.URLParam(r, "id")

	product, image, ok := c.parseProductForm(w, r)
	if !ok {
		return
	}
	product.ProductID = id

	updated, err := c.backend.UpdateProduct(r.Context(), id, product, image)
	if err != nil {
		c.handleBackendError(w, logger, err)
		return
	}

	logger.Info("product updated", zap.String("productId", id))
	c.writeJSON(w, http.StatusOK, toProductResponse(*updated))
}

func (c *Controller) HandleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := c.backend.DeleteProduct(r.Context(), id); err != nil {
		c.handleBackendError(w, c.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseProductForm reads the multipart product form. The optional ImageFile
// part is handed to the facade unread; the facade consumes and closes it.
func (c *Controller) parseProductForm(w http.ResponseWriter, r *http.Request) (domain.Product, *api.ImageFile, bool) {
	if err := r.ParseMultipartForm(c.maxUploadBytes); err != nil {
		c.writeValidationError(w, "invalid form body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a multipart form",
		})
		return domain.Product{}, nil, false
	}

	price, priceErr := strconv.Atoi(r.FormValue("Price"))
	stock, stockErr := strconv.Atoi(r.FormValue("StockAvailable"))

	product := domain.Product{
		ProductName:    r.FormValue("ProductName"),
		Description:    r.FormValue("Description"),
		Price:          price,
		StockAvailable: stock,
		ImageURL:       r.FormValue("ImageUrl"),
	}

	var details []apperrors.ValidationDetail

	if strings.TrimSpace(product.ProductName) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "ProductName",
			Message: "ProductName is required",
		})
	} else if len(product.ProductName) > 200 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "ProductName",
			Message: "ProductName cannot exceed 200 characters",
		})
	}

	if len(product.Description) > 1000 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "Description",
			Message: "Description cannot exceed 1000 characters",
		})
	}

	if priceErr != nil || price <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "Price",
			Message: "Price must be a positive integer amount in minor units",
		})
	}

	if stockErr != nil || stock < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "StockAvailable",
			Message: "StockAvailable must be a non-negative integer",
		})
	}

	if len(details) > 0 {
		c.writeValidationError(w, "product validation failed", details...)
		return domain.Product{}, nil, false
	}

	var image *api.ImageFile
	if file, header, err := r.FormFile("ImageFile"); err == nil && header.Size > 0 {
		image = &api.ImageFile{
			Reader:      file,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	return product, image, true
}
