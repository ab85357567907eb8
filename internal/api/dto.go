package api

import "time"

// Wire shapes for the Functions backend (camelCase JSON). These are decode
// targets only; outbound payloads have their own structs so server-owned
// fields can never leak into a request.

type customerDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ShippingAddress string    `json:"shippingAddress"`
	CreationDateUtc time.Time `json:"creationDateUtc"`
}

type productDTO struct {
	ID              string    `json:"id"`
	ProductName     string    `json:"productName"`
	Description     string    `json:"description"`
	Price           int       `json:"price"`
	StockAvailable  int       `json:"stockAvailable"`
	ImageURL        string    `json:"imageUrl"`
	CreationDateUtc time.Time `json:"creationDateUtc"`
}

type orderDTO struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName"`
	Quantity     int       `json:"quantity"`
	UnitPrice    int       `json:"unitPrice"`
	TotalPrice   int       `json:"totalPrice"`
	OrderDateUtc time.Time `json:"orderDateUtc"`
	Status       string    `json:"status"`
}

type uploadResponse struct {
	FileName string `json:"fileName"`
}

type customerPayload struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	ShippingAddress string `json:"shippingAddress"`
}

type createOrderPayload struct {
	CustomerID string `json:"customerId"`
	ProductID  string `json:"productId"`
	Quantity   int    `json:"quantity"`
}

type statusPayload struct {
	Status string `json:"status"`
}
