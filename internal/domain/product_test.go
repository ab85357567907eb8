package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProduct_AssignsIdentifier(t *testing.T) {
	product := NewProduct()

	assert.NotEmpty(t, product.ProductID)
	assert.False(t, product.CreationDate.IsZero())
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, Product{StockAvailable: 1}.InStock())
	assert.False(t, Product{StockAvailable: 0}.InStock())
}
