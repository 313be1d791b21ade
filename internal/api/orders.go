package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	var out []OrderSummary
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, in OrderPayload) error {
	return c.do(ctx, http.MethodPost, "/orders", in, nil)
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, in OrderPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), in, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}

// OrderSummary resolves the single-order summary view (customer + product names).
func (c *Client) OrderSummary(ctx context.Context, id int64) (*OrderDetail, error) {
	var out OrderDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/summary", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
