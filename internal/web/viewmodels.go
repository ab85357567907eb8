package web

import (
	"time"

	"abcretail/internal/domain"
)

// JSON views of the domain entities for browser consumption.

type customerResponse struct {
	CustomerID      string    `json:"customerId"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ShippingAddress string    `json:"shippingAddress"`
	CreationDate    time.Time `json:"creationDate"`
}

func toCustomerResponse(c domain.Customer) customerResponse {
	return customerResponse{
		CustomerID:      c.CustomerID,
		Name:            c.Name,
		Surname:         c.Surname,
		Username:        c.Username,
		Email:           c.Email,
		ShippingAddress: c.ShippingAddress,
		CreationDate:    c.CreationDate,
	}
}

type productResponse struct {
	ProductID      string    `json:"productId"`
	ProductName    string    `json:"productName"`
	Description    string    `json:"description"`
	Price          int       `json:"price"`
	StockAvailable int       `json:"stockAvailable"`
	ImageURL       string    `json:"imageUrl"`
	CreationDate   time.Time `json:"creationDate"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ProductID:      p.ProductID,
		ProductName:    p.ProductName,
		Description:    p.Description,
		Price:          p.Price,
		StockAvailable: p.StockAvailable,
		ImageURL:       p.ImageURL,
		CreationDate:   p.CreationDate,
	}
}

type orderResponse struct {
	OrderID     string    `json:"orderId"`
	CustomerID  string    `json:"customerId"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitPrice   int       `json:"unitPrice"`
	TotalPrice  int       `json:"totalPrice"`
	OrderDate   time.Time `json:"orderDate"`
	Status      string    `json:"status"`
}

func toOrderResponse(o domain.Order) orderResponse {
	return orderResponse{
		OrderID:     o.OrderID,
		CustomerID:  o.CustomerID,
		ProductID:   o.ProductID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		UnitPrice:   o.UnitPrice,
		TotalPrice:  o.TotalPrice,
		OrderDate:   o.OrderDate,
		Status:      o.Status,
	}
}

type dashboardResponse struct {
	CustomerCount    int               `json:"customerCount"`
	ProductCount     int               `json:"productCount"`
	OrderCount       int               `json:"orderCount"`
	FeaturedProducts []productResponse `json:"featuredProducts"`
}
