package api

import (
	"context"
	"net/http"
	"net/url"

	"abcretail/internal/domain"
)

func (c *Client) GetCustomers(ctx context.Context) ([]domain.Customer, error) {
	resp, err := c.get(ctx, customersRoute)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dtos []customerDTO
	if err := decodeInto(resp, "customers", &dtos); err != nil {
		return nil, err
	}

	customers := make([]domain.Customer, 0, len(dtos))
	for _, d := range dtos {
		customers = append(customers, customerFromWire(d))
	}
	return customers, nil
}

func (c *Client) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	resp, err := c.get(ctx, customersRoute+"/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dto customerDTO
	if err := decodeInto(resp, "customer", &dto); err != nil {
		return nil, err
	}

	customer := customerFromWire(dto)
	return &customer, nil
}

func (c *Client) CreateCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	return c.sendCustomer(ctx, http.MethodPost, customersRoute, customer)
}

func (c *Client) UpdateCustomer(ctx context.Context, id string, customer domain.Customer) (*domain.Customer, error) {
	return c.sendCustomer(ctx, http.MethodPut, customersRoute+"/"+url.PathEscape(id), customer)
}

func (c *Client) sendCustomer(ctx context.Context, method, route string, customer domain.Customer) (*domain.Customer, error) {
	resp, err := c.sendJSON(ctx, method, route, customerToWire(customer))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dto customerDTO
	if err := decodeInto(resp, "customer", &dto); err != nil {
		return nil, err
	}

	created := customerFromWire(dto)
	return &created, nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	resp, err := c.send(ctx, http.MethodDelete, customersRoute+"/"+url.PathEscape(id), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return ensureSuccess(resp)
}
