package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product prices are integer minor units (cents); formatting for display is
// the presentation layer's problem.
type Product struct {
	ProductID      string
	ProductName    string
	Description    string
	Price          int
	StockAvailable int
	ImageURL       string
	CreationDate   time.Time
}

func NewProduct() Product {
	return Product{
		ProductID:    uuid.New().String(),
		CreationDate: time.Now().UTC(),
	}
}

func (p Product) InStock() bool {
	return p.StockAvailable > 0
}
