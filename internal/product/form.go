package product

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/fragranceshop/fragrance-admin/internal/api"
)

// FormData holds the add/edit draft. Price and StockQuantity stay as entered
// text until submit so "empty" and "zero" validate differently.
type FormData struct {
	Name          string
	Brand         string
	Price         string
	StockQuantity string
	Concentration string
	Description   string
}

func formFrom(p api.Product) FormData {
	f := FormData{
		Name:          p.Name,
		Brand:         p.Brand,
		Price:         p.Price.String(),
		StockQuantity: strconv.Itoa(p.StockQuantity),
	}
	if p.Concentration != nil {
		f.Concentration = *p.Concentration
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	return f
}

// Validate is pure. An empty map means the draft may be submitted.
func (f FormData) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name required"
	}
	if strings.TrimSpace(f.Brand) == "" {
		errs["brand"] = "Brand required"
	}
	if p, err := decimal.NewFromString(strings.TrimSpace(f.Price)); err != nil || p.Sign() <= 0 {
		errs["price"] = "Price must be positive"
	}
	if n, err := strconv.Atoi(strings.TrimSpace(f.StockQuantity)); err != nil || n < 0 {
		errs["stockQuantity"] = "Stock cannot be negative"
	}
	return errs
}

// input builds the API payload. Blank optional fields are sent as absent, not
// as empty strings. Only valid after Validate returns no errors.
func (f FormData) input() api.ProductInput {
	price, _ := decimal.NewFromString(strings.TrimSpace(f.Price))
	stock, _ := strconv.Atoi(strings.TrimSpace(f.StockQuantity))
	in := api.ProductInput{
		Name:          f.Name,
		Brand:         f.Brand,
		Price:         price,
		StockQuantity: stock,
	}
	if c := f.Concentration; c != "" {
		in.Concentration = &c
	}
	if d := f.Description; d != "" {
		in.Description = &d
	}
	return in
}
