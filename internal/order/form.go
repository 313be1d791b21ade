package order

import (
	"github.com/shopspring/decimal"

	"github.com/fragranceshop/fragrance-admin/internal/api"
)

// Draft is the create/edit order form: one customer, one or more products.
// Completeness is checked at submit time, not while the user is picking.
type Draft struct {
	CustomerID int64
	ProductIDs []int64
}

func (d *Draft) selected(id int64) bool {
	for _, pid := range d.ProductIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// Toggle adds the product to the selection, or removes it if already picked.
func (d *Draft) Toggle(id int64) {
	if !d.selected(id) {
		d.ProductIDs = append(d.ProductIDs, id)
		return
	}
	out := d.ProductIDs[:0]
	for _, pid := range d.ProductIDs {
		if pid != id {
			out = append(out, pid)
		}
	}
	d.ProductIDs = out
}

// Complete reports whether the draft can be submitted.
func (d *Draft) Complete() bool {
	return d.CustomerID != 0 && len(d.ProductIDs) > 0
}

func (d *Draft) payload() api.OrderPayload {
	return api.OrderPayload{CustomerID: d.CustomerID, ProductIDs: d.ProductIDs}
}

// PreviewTotal sums the currently selected product prices. It is a display
// preview only; the authoritative total is whatever the server computes.
func PreviewTotal(d *Draft, products []api.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		if d.selected(p.ID) {
			total = total.Add(p.Price)
		}
	}
	return total
}
