package api

import (
	"context"
	"net/http"
	"net/url"

	"abcretail/internal/domain"
)

func (c *Client) GetOrders(ctx context.Context) ([]domain.Order, error) {
	resp, err := c.get(ctx, ordersRoute)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dtos []orderDTO
	if err := decodeInto(resp, "orders", &dtos); err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(dtos))
	for _, d := range dtos {
		orders = append(orders, orderFromWire(d))
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	resp, err := c.get(ctx, ordersRoute+"/"+url.PathEscape(id))
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

	var dto orderDTO
	if err := decodeInto(resp, "order", &dto); err != nil {
		return nil, err
	}

	order := orderFromWire(dto)
	return &order, nil
}

// CreateOrder sends only the identifying fields and the quantity; unit price,
// total, status and timestamp are computed by the backend, which holds price
// and stock authority.
func (c *Client) CreateOrder(ctx context.Context, customerID, productID string, quantity int) (*domain.Order, error) {
	payload := createOrderPayload{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
	}

	resp, err := c.sendJSON(ctx, http.MethodPost, ordersRoute, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dto orderDTO
	if err := decodeInto(resp, "order", &dto); err != nil {
		return nil, err
	}

	order := orderFromWire(dto)
	return &order, nil
}

// UpdateOrderStatus patches only the status field; it is the one mutation the
// frontend is allowed after creation.
func (c *Client) UpdateOrderStatus(ctx context.Context, id, newStatus string) error {
	route := ordersRoute + "/" + url.PathEscape(id) + "/status"

	resp, err := c.sendJSON(ctx, http.MethodPatch, route, statusPayload{Status: newStatus})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return ensureSuccess(resp)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	resp, err := c.send(ctx, http.MethodDelete, ordersRoute+"/"+url.PathEscape(id), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return ensureSuccess(resp)
}
