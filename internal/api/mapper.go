package api

import (
	"strconv"
	"strings"

	"abcretail/internal/domain"
)

// Mapping between wire shapes and domain entities. Both directions are pure
// functions: no I/O, no mutation of inputs.

func customerFromWire(d customerDTO) domain.Customer {
	return domain.Customer{
		CustomerID:      d.ID,
		Name:            d.Name,
		Surname:         d.Surname,
		Username:        d.Username,
		Email:           d.Email,
		ShippingAddress: d.ShippingAddress,
		CreationDate:    d.CreationDateUtc.Local(),
	}
}

func customerToWire(c domain.Customer) customerPayload {
	return customerPayload{
		Name:            c.Name,
		Surname:         c.Surname,
		Username:        c.Username,
		Email:           c.Email,
		ShippingAddress: c.ShippingAddress,
	}
}

func productFromWire(d productDTO) domain.Product {
	return domain.Product{
		ProductID:      d.ID,
		ProductName:    d.ProductName,
		Description:    d.Description,
		Price:          d.Price,
		StockAvailable: d.StockAvailable,
		ImageURL:       d.ImageURL,
		CreationDate:   d.CreationDateUtc.Local(),
	}
}

// productFormFields lists the scalar multipart parts for a product mutation
// in the order the backend documents them. Price and stock are rendered with
// strconv so the host locale can never introduce separators.
func productFormFields(p domain.Product) []formField {
	fields := []formField{
		{Name: "ProductName", Value: p.ProductName},
		{Name: "Description", Value: p.Description},
		{Name: "Price", Value: strconv.Itoa(p.Price)},
		{Name: "StockAvailable", Value: strconv.Itoa(p.StockAvailable)},
	}
	if strings.TrimSpace(p.ImageURL) != "" {
		fields = append(fields, formField{Name: "ImageUrl", Value: p.ImageURL})
	}
	return fields
}

func orderFromWire(d orderDTO) domain.Order {
	status := d.Status
	if status == "" {
		status = domain.OrderStatusSubmitted
	}

	return domain.Order{
		OrderID:     d.ID,
		CustomerID:  d.CustomerID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		// The wire total is ignored even when present; a stale backend must
		// not leak an outdated figure into the UI.
		TotalPrice: d.Quantity * d.UnitPrice,
		OrderDate:  d.OrderDateUtc.Local(),
		Status:     status,
	}
}
