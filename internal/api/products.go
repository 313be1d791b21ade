package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (*Product, error) {
	var out Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) error {
	return c.do(ctx, http.MethodPost, "/products", in, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), in, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}
