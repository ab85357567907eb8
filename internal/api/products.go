package api

import (
	"context"
	"net/http"
	"net/url"

	"abcretail/internal/domain"
	apperrors "abcretail/internal/errors"
)

func (c *Client) GetProducts(ctx context.Context) ([]domain.Product, error) {
	resp, err := c.get(ctx, productsRoute)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dtos []productDTO
	if err := decodeInto(resp, "products", &dtos); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(dtos))
	for _, d := range dtos {
		products = append(products, productFromWire(d))
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	resp, err := c.get(ctx, productsRoute+"/"+url.PathEscape(id))
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

	var dto productDTO
	if err := decodeInto(resp, "product", &dto); err != nil {
		return nil, err
	}

	product := productFromWire(dto)
	return &product, nil
}

// CreateProduct sends the product as a multipart form so an optional image
// can ride along as a binary part. A nil image simply omits the part.
func (c *Client) CreateProduct(ctx context.Context, product domain.Product, image *ImageFile) (*domain.Product, error) {
	return c.sendProduct(ctx, http.MethodPost, productsRoute, product, image)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, product domain.Product, image *ImageFile) (*domain.Product, error) {
	return c.sendProduct(ctx, http.MethodPut, productsRoute+"/"+url.PathEscape(id), product, image)
}

func (c *Client) sendProduct(ctx context.Context, method, route string, product domain.Product, image *ImageFile) (*domain.Product, error) {
	fb := newFormBuilder()
	fb.addFields(productFormFields(product))
	if image != nil {
		fb.file("ImageFile", image.FileName, image.ContentType, image.Reader)
	}

	body, contentType, err := fb.build()
	if err != nil {
		return nil, apperrors.NewRequestError(0, "building product form", err)
	}

	resp, err := c.send(ctx, method, route, contentType, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := ensureSuccess(resp); err != nil {
		return nil, err
	}

	var dto productDTO
	if err := decodeInto(resp, "product", &dto); err != nil {
		return nil, err
	}

	saved := productFromWire(dto)
	return &saved, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	resp, err := c.send(ctx, http.MethodDelete, productsRoute+"/"+url.PathEscape(id), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return ensureSuccess(resp)
}
