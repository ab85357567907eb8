package testutil

import (
	"context"

	"abcretail/internal/api"
	"abcretail/internal/domain"
)

// MockFunctionsAPI implements api.FunctionsAPI with overridable behaviour per
// call. Unset funcs return zero values so handlers under test do not have to
// stub every method.
type MockFunctionsAPI struct {
	GetCustomersFunc   func(ctx context.Context) ([]domain.Customer, error)
	GetCustomerFunc    func(ctx context.Context, id string) (*domain.Customer, error)
	CreateCustomerFunc func(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
	UpdateCustomerFunc func(ctx context.Context, id string, customer domain.Customer) (*domain.Customer, error)
	DeleteCustomerFunc func(ctx context.Context, id string) error

	GetProductsFunc   func(ctx context.Context) ([]domain.Product, error)
	GetProductFunc    func(ctx context.Context, id string) (*domain.Product, error)
	CreateProductFunc func(ctx context.Context, product domain.Product, image *api.ImageFile) (*domain.Product, error)
	UpdateProductFunc func(ctx context.Context, id string, product domain.Product, image *api.ImageFile) (*domain.Product, error)
	DeleteProductFunc func(ctx context.Context, id string) error

	GetOrdersFunc         func(ctx context.Context) ([]domain.Order, error)
	GetOrderFunc          func(ctx context.Context, id string) (*domain.Order, error)
	CreateOrderFunc       func(ctx context.Context, customerID, productID string, quantity int) (*domain.Order, error)
	UpdateOrderStatusFunc func(ctx context.Context, id, newStatus string) error
	DeleteOrderFunc       func(ctx context.Context, id string) error

	UploadProofOfPaymentFunc func(ctx context.Context, upload api.UploadRequest) (string, error)
}

var _ api.FunctionsAPI = (*MockFunctionsAPI)(nil)

func (m *MockFunctionsAPI) GetCustomers(ctx context.Context) ([]domain.Customer, error) {
	if m.GetCustomersFunc == nil {
		return nil, nil
	}
	return m.GetCustomersFunc(ctx)
}

func (m *MockFunctionsAPI) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if m.GetCustomerFunc == nil {
		return nil, nil
	}
	return m.GetCustomerFunc(ctx, id)
}

func (m *MockFunctionsAPI) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	if m.CreateCustomerFunc == nil {
		return &customer, nil
	}
	return m.CreateCustomerFunc(ctx, customer)
}

func (m *MockFunctionsAPI) UpdateCustomer(ctx context.Context, id string, customer domain.Customer) (*domain.Customer, error) {
	if m.UpdateCustomerFunc == nil {
		return &customer, nil
	}
	return m.UpdateCustomerFunc(ctx, id, customer)
}

func (m *MockFunctionsAPI) DeleteCustomer(ctx context.Context, id string) error {
	if m.DeleteCustomerFunc == nil {
		return nil
	}
	return m.DeleteCustomerFunc(ctx, id)
}

func (m *MockFunctionsAPI) GetProducts(ctx context.Context) ([]domain.Product, error) {
	if m.GetProductsFunc == nil {
		return nil, nil
	}
	return m.GetProductsFunc(ctx)
}

func (m *MockFunctionsAPI) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if m.GetProductFunc == nil {
		return nil, nil
	}
	return m.GetProductFunc(ctx, id)
}

func (m *MockFunctionsAPI) CreateProduct(ctx context.Context, product domain.Product, image *api.ImageFile) (*domain.Product, error) {
	if m.CreateProductFunc == nil {
		return &product, nil
	}
	return m.CreateProductFunc(ctx, product, image)
}

func (m *MockFunctionsAPI) UpdateProduct(ctx context.Context, id string, product domain.Product, image *api.ImageFile) (*domain.Product, error) {
	if m.UpdateProductFunc == nil {
		return &product, nil
	}
	return m.UpdateProductFunc(ctx, id, product, image)
}

func (m *MockFunctionsAPI) DeleteProduct(ctx context.Context, id string) error {
	if m.DeleteProductFunc == nil {
		return nil
	}
	return m.DeleteProductFunc(ctx, id)
}

func (m *MockFunctionsAPI) GetOrders(ctx context.Context) ([]domain.Order, error) {
	if m.GetOrdersFunc == nil {
		return nil, nil
	}
	return m.GetOrdersFunc(ctx)
}

func (m *MockFunctionsAPI) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	if m.GetOrderFunc == nil {
		return nil, nil
	}
	return m.GetOrderFunc(ctx, id)
}

func (m *MockFunctionsAPI) CreateOrder(ctx context.Context, customerID, productID string, quantity int) (*domain.Order, error) {
	if m.CreateOrderFunc == nil {
		return &domain.Order{CustomerID: customerID, ProductID: productID, Quantity: quantity}, nil
	}
	return m.CreateOrderFunc(ctx, customerID, productID, quantity)
}

func (m *MockFunctionsAPI) UpdateOrderStatus(ctx context.Context, id, newStatus string) error {
	if m.UpdateOrderStatusFunc == nil {
		return nil
	}
	return m.UpdateOrderStatusFunc(ctx, id, newStatus)
}

func (m *MockFunctionsAPI) DeleteOrder(ctx context.Context, id string) error {
	if m.DeleteOrderFunc == nil {
		return nil
	}
	return m.DeleteOrderFunc(ctx, id)
}

func (m *MockFunctionsAPI) UploadProofOfPayment(ctx context.Context, upload api.UploadRequest) (string, error) {
	if m.UploadProofOfPaymentFunc == nil {
		return upload.FileName, nil
	}
	return m.UploadProofOfPaymentFunc(ctx, upload)
}
