package api

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var out []Customer
	if err := c.do(ctx, http.MethodGet, "/customers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int64) (*Customer, error) {
	var out Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in CustomerInput) error {
	return c.do(ctx, http.MethodPost, "/customers", in, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int64, in CustomerInput) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customers/%d", id), in, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id), nil, nil)
}

// CustomerSummary returns the customer with its order summaries resolved.
func (c *Client) CustomerSummary(ctx context.Context, id int64) (*CustomerSummary, error) {
	var out CustomerSummary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customers/%d/summary", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
