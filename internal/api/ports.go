package api

import (
	"context"
	"io"

	"abcretail/internal/domain"
)

// FunctionsAPI is the facade the rest of the application programs against.
// Every call is a single round trip to the remote Functions backend; the
// backend owns all business rules (stock, pricing, queueing), this layer only
// translates between domain values and the wire.
//
// Get* single-resource reads return (nil, nil) when the backend answers 404;
// that is a defined outcome, not an error. List reads return an empty slice
// for an empty collection.
type FunctionsAPI interface {
	GetCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, id string, customer domain.Customer) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error

	GetProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, product domain.Product, image *ImageFile) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, product domain.Product, image *ImageFile) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	GetOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	CreateOrder(ctx context.Context, customerID, productID string, quantity int) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id, newStatus string) error
	DeleteOrder(ctx context.Context, id string) error

	UploadProofOfPayment(ctx context.Context, upload UploadRequest) (string, error)
}

// ImageFile is an optional binary attachment for product mutations. Reader is
// consumed exactly once; when it also implements io.Closer the call closes it
// on every exit path.
type ImageFile struct {
	Reader      io.Reader
	FileName    string
	ContentType string
}

// UploadRequest carries a proof-of-payment file plus optional correlation
// fields the backend uses for filing. Same single-consumption and closing
// rules as ImageFile apply to File.
type UploadRequest struct {
	File         io.Reader
	FileName     string
	ContentType  string
	OrderID      string
	CustomerName string
}
