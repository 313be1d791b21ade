// Package order is the order list screen. Besides the order summaries it keeps
// the customer and product lists loaded, since the order form selects from
// both. Deleting an order needs no cascade.
package order

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fragranceshop/fragrance-admin/internal/api"
	"github.com/fragranceshop/fragrance-admin/internal/modal"
	"github.com/fragranceshop/fragrance-admin/internal/view"
)

// ErrIncomplete marks a submit without a customer or without products.
var ErrIncomplete = errors.New("incomplete order")

// API is the slice of the backend client this screen needs.
type API interface {
	ListOrders(ctx context.Context) ([]api.OrderSummary, error)
	ListCustomers(ctx context.Context) ([]api.Customer, error)
	ListProducts(ctx context.Context) ([]api.Product, error)
	CreateOrder(ctx context.Context, in api.OrderPayload) error
	UpdateOrder(ctx context.Context, id int64, in api.OrderPayload) error
	DeleteOrder(ctx context.Context, id int64) error
}

type Screen struct {
	api API

	orders    []api.OrderSummary
	customers []api.Customer
	products  []api.Product
	search    string
	page      int

	modal  modal.State[api.OrderSummary]
	draft  Draft
	banner string
}

func NewScreen(a API) *Screen {
	return &Screen{api: a, page: 1}
}

// Load fetches orders plus the customer and product collections the form needs.
// Any fetch failure leaves all three previous lists untouched.
func (s *Screen) Load(ctx context.Context) error {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		s.banner = "Failed to load orders or related data."
		return err
	}
	customers, err := s.api.ListCustomers(ctx)
	if err != nil {
		s.banner = "Failed to load orders or related data."
		return err
	}
	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.banner = "Failed to load orders or related data."
		return err
	}
	s.orders = orders
	s.customers = customers
	s.products = products
	s.banner = ""
	s.page = 1
	return nil
}

func (s *Screen) SetSearch(term string) {
	s.search = term
	s.page = 1
}

func (s *Screen) Search() string { return s.search }

func (s *Screen) filtered() []api.OrderSummary {
	return view.Filter(s.orders, s.search)
}

// Visible is the current page of the filtered list, derived on every call.
func (s *Screen) Visible() []api.OrderSummary {
	return view.Page(s.filtered(), s.page, view.PageSize)
}

func (s *Screen) Page() int { return s.page }

func (s *Screen) TotalPages() int {
	return view.TotalPages(len(s.filtered()), view.PageSize)
}

func (s *Screen) FilteredCount() int { return len(s.filtered()) }

func (s *Screen) SetPage(p int) {
	s.page = view.Clamp(p, len(s.filtered()), view.PageSize)
}

func (s *Screen) NextPage() { s.SetPage(s.page + 1) }
func (s *Screen) PrevPage() { s.SetPage(s.page - 1) }

func (s *Screen) Banner() string   { return s.banner }
func (s *Screen) Mode() modal.Mode { return s.modal.Mode() }
func (s *Screen) Submitting() bool { return s.modal.Submitting() }

func (s *Screen) Selected() (api.OrderSummary, bool) { return s.modal.Selected() }

// Customers and Products back the form's pickers.
func (s *Screen) Customers() []api.Customer { return s.customers }
func (s *Screen) Products() []api.Product   { return s.products }

// Draft exposes the order form for the UI to mutate in place.
func (s *Screen) Draft() *Draft { return &s.draft }

// PreviewTotal is the display total for the current selection.
func (s *Screen) PreviewTotal() decimal.Decimal {
	return PreviewTotal(&s.draft, s.products)
}

func (s *Screen) OpenAdd() {
	s.draft = Draft{}
	s.modal.OpenAdd()
}

// OpenEdit starts from an empty product selection: the list contract exposes
// product display names only, so an existing order's ids cannot be seeded.
func (s *Screen) OpenEdit(o api.OrderSummary) {
	s.draft = Draft{}
	s.modal.OpenEdit(o)
}

func (s *Screen) OpenDelete(o api.OrderSummary) { s.modal.OpenDelete(o) }

func (s *Screen) Close() { s.modal.Close() }

// Submit checks the draft is complete, then creates or updates the order for
// the open modal, reloads and closes. A rejected save keeps the draft.
func (s *Screen) Submit(ctx context.Context) error {
	if !s.draft.Complete() {
		s.banner = "Customer and at least one product are required."
		return ErrIncomplete
	}
	if !s.modal.Begin() {
		return nil // duplicate trigger or no open modal
	}
	defer s.modal.End()

	var err error
	switch s.modal.Mode() {
	case modal.Add:
		err = s.api.CreateOrder(ctx, s.draft.payload())
	case modal.Edit:
		sel, ok := s.modal.Selected()
		if !ok {
			return nil
		}
		err = s.api.UpdateOrder(ctx, sel.ID, s.draft.payload())
	default:
		return nil
	}
	if err != nil {
		s.banner = "Save failed. Ensure selections are valid."
		return err
	}
	_ = s.Load(ctx)
	s.Close()
	return nil
}

// ConfirmDelete deletes the selected order directly. ran is false when the
// trigger was ignored. The modal closes whatever the outcome.
func (s *Screen) ConfirmDelete(ctx context.Context) (ran bool, err error) {
	sel, found := s.modal.Selected()
	if !found || s.modal.Mode() != modal.Delete || !s.modal.Begin() {
		return false, nil
	}
	if err := s.api.DeleteOrder(ctx, sel.ID); err != nil {
		s.banner = "Delete failed."
		s.Close()
		return true, err
	}
	s.banner = ""
	_ = s.Load(ctx)
	s.Close()
	return true, nil
}
