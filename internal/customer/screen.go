// Package customer is the customer list screen: in-memory store, derived
// filtered/paged view, add/edit form and the delete cascade.
package customer

import (
	"context"
	"errors"

	"github.com/fragranceshop/fragrance-admin/internal/api"
	"github.com/fragranceshop/fragrance-admin/internal/cascade"
	"github.com/fragranceshop/fragrance-admin/internal/modal"
	"github.com/fragranceshop/fragrance-admin/internal/view"
)

// ErrValidation marks a submit blocked by field errors; read FieldErrors.
var ErrValidation = errors.New("validation failed")

// API is the slice of the backend client this screen needs.
type API interface {
	cascade.CustomerGateway
	ListCustomers(ctx context.Context) ([]api.Customer, error)
	CreateCustomer(ctx context.Context, in api.CustomerInput) error
	UpdateCustomer(ctx context.Context, id int64, in api.CustomerInput) error
}

type Screen struct {
	api API

	customers []api.Customer
	search    string
	page      int

	modal    modal.State[api.Customer]
	form     FormData
	formErrs map[string]string
	banner   string
}

func NewScreen(a API) *Screen {
	return &Screen{api: a, page: 1}
}

// Load replaces the list wholesale and resets to page 1. On failure the
// previous list is kept and only the banner changes.
func (s *Screen) Load(ctx context.Context) error {
	list, err := s.api.ListCustomers(ctx)
	if err != nil {
		s.banner = "Failed to load customers."
		return err
	}
	s.customers = list
	s.banner = ""
	s.page = 1
	return nil
}

func (s *Screen) SetSearch(term string) {
	s.search = term
	s.page = 1
}

func (s *Screen) Search() string { return s.search }

func (s *Screen) filtered() []api.Customer {
	return view.Filter(s.customers, s.search)
}

// Visible is the current page of the filtered list, derived on every call.
func (s *Screen) Visible() []api.Customer {
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

func (s *Screen) Banner() string                 { return s.banner }
func (s *Screen) FieldErrors() map[string]string { return s.formErrs }
func (s *Screen) Mode() modal.Mode               { return s.modal.Mode() }
func (s *Screen) Submitting() bool               { return s.modal.Submitting() }

func (s *Screen) Selected() (api.Customer, bool) { return s.modal.Selected() }

// Form exposes the draft for the UI to mutate in place.
func (s *Screen) Form() *FormData { return &s.form }

func (s *Screen) OpenAdd() {
	s.form = FormData{}
	s.formErrs = nil
	s.modal.OpenAdd()
}

func (s *Screen) OpenEdit(c api.Customer) {
	s.form = formFrom(c)
	s.formErrs = nil
	s.modal.OpenEdit(c)
}

func (s *Screen) OpenDelete(c api.Customer) { s.modal.OpenDelete(c) }

func (s *Screen) Close() { s.modal.Close() }

// Submit validates the draft and runs the create or update for the open modal,
// then reloads and closes. A rejected save keeps the draft and the modal so the
// user can retry.
func (s *Screen) Submit(ctx context.Context) error {
	if errs := s.form.Validate(); len(errs) > 0 {
		s.formErrs = errs
		return ErrValidation
	}
	s.formErrs = nil
	if !s.modal.Begin() {
		return nil // duplicate trigger or no open modal
	}
	defer s.modal.End()

	var err error
	switch s.modal.Mode() {
	case modal.Add:
		err = s.api.CreateCustomer(ctx, s.form.input())
	case modal.Edit:
		sel, ok := s.modal.Selected()
		if !ok {
			return nil
		}
		err = s.api.UpdateCustomer(ctx, sel.ID, s.form.input())
	default:
		return nil
	}
	if err != nil {
		s.banner = "Save failed. Check inputs or duplicates."
		return err
	}
	_ = s.Load(ctx)
	s.Close()
	return nil
}

// ConfirmDelete runs the order cascade and then the customer delete for the
// selected row. ok is false when the trigger was ignored (no delete modal open
// or a submission already in flight). The modal closes whatever the outcome.
func (s *Screen) ConfirmDelete(ctx context.Context) (cascade.Result, bool) {
	sel, found := s.modal.Selected()
	if !found || s.modal.Mode() != modal.Delete || !s.modal.Begin() {
		return cascade.Result{}, false
	}
	res := cascade.Customer(ctx, s.api, sel.ID)
	if res.Err != nil {
		s.banner = "Delete failed. Please try again."
		s.Close()
		return res, true
	}
	s.banner = ""
	_ = s.Load(ctx)
	s.Close()
	return res, true
}
