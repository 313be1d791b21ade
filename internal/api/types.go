package api

import "github.com/shopspring/decimal"

type Customer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SearchFields feeds the case-insensitive list filter.
func (c Customer) SearchFields() []string {
	return []string{c.FirstName, c.LastName, c.Email}
}

type CustomerInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CustomerOrder is the per-order slice of the customer summary view.
type CustomerOrder struct {
	ID          int64           `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	DateCreated string          `json:"dateCreated"`
}

type CustomerSummary struct {
	Customer
	Orders []CustomerOrder `json:"orders"`
}

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Concentration *string         `json:"concentration,omitempty"`
	Description   *string         `json:"description,omitempty"`
}

func (p Product) SearchFields() []string {
	conc := ""
	if p.Concentration != nil {
		conc = *p.Concentration
	}
	return []string{p.Name, p.Brand, conc}
}

type ProductInput struct {
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Concentration *string         `json:"concentration"`
	Description   *string         `json:"description"`
}

// OrderSummary is the denormalized row returned by the order list endpoint.
// The contract exposes product display names only, never product ids.
type OrderSummary struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customerName"`
	Products     []string        `json:"products"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	DateCreated  string          `json:"dateCreated"`
}

func (o OrderSummary) SearchFields() []string {
	return append([]string{o.CustomerName}, o.Products...)
}

type OrderPayload struct {
	CustomerID int64   `json:"customerId"`
	ProductIDs []int64 `json:"productIds"`
}

// OrderDetail is the order summary endpoint's shape, with the customer resolved.
type OrderDetail struct {
	ID       int64 `json:"id"`
	Customer struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"customer"`
	Products    []string        `json:"products"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	DateCreated string          `json:"dateCreated"`
}
