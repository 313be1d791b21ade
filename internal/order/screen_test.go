package order

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fragranceshop/fragrance-admin/internal/api"
	"github.com/fragranceshop/fragrance-admin/internal/modal"
)

// fakeAPI implements the screen's API interface in memory.
type fakeAPI struct {
	orders    []api.OrderSummary
	customers []api.Customer
	products  []api.Product

	ordersErr    error
	customersErr error
	productsErr  error

	created   []api.OrderPayload
	createErr error
	updated   map[int64]api.OrderPayload
	deleted   []int64
	deleteErr error
	listCalls int
}

func (f *fakeAPI) ListOrders(ctx context.Context) ([]api.OrderSummary, error) {
	f.listCalls++
	if f.ordersErr != nil {
		return nil, f.ordersErr
	}
	return append([]api.OrderSummary(nil), f.orders...), nil
}

func (f *fakeAPI) ListCustomers(ctx context.Context) ([]api.Customer, error) {
	if f.customersErr != nil {
		return nil, f.customersErr
	}
	return f.customers, nil
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]api.Product, error) {
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return f.products, nil
}

func (f *fakeAPI) CreateOrder(ctx context.Context, in api.OrderPayload) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, in)
	return nil
}

func (f *fakeAPI) UpdateOrder(ctx context.Context, id int64, in api.OrderPayload) error {
	if f.updated == nil {
		f.updated = map[int64]api.OrderPayload{}
	}
	f.updated[id] = in
	return nil
}

func (f *fakeAPI) DeleteOrder(ctx context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func seeded() *fakeAPI {
	return &fakeAPI{
		orders: []api.OrderSummary{
			{ID: 1, CustomerName: "Jane Doe", Products: []string{"Velvet Oud"}, TotalAmount: decimal.RequireFromString("45.00")},
			{ID: 2, CustomerName: "Bob Roe", Products: []string{"Citrus Bloom", "Cedar Noir"}, TotalAmount: decimal.RequireFromString("72.50")},
		},
		customers: []api.Customer{
			{ID: 1, FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"},
			{ID: 2, FirstName: "Bob", LastName: "Roe", Email: "bob@x.com"},
		},
		products: []api.Product{
			{ID: 1, Name: "Velvet Oud", Price: decimal.RequireFromString("45.00")},
			{ID: 2, Name: "Citrus Bloom", Price: decimal.RequireFromString("12.50")},
			{ID: 3, Name: "Cedar Noir", Price: decimal.RequireFromString("60.00")},
		},
	}
}

func TestLoadFetchesAllThreeCollections(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(s.Visible()) != 2 || len(s.Customers()) != 2 || len(s.Products()) != 3 {
		t.Fatalf("orders=%d customers=%d products=%d",
			len(s.Visible()), len(s.Customers()), len(s.Products()))
	}
}

func TestLoadFailureKeepsAllPreviousLists(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}
	before := s.Visible()

	f.productsErr = errors.New("down")
	if err := s.Load(ctx); err == nil {
		t.Fatal("expected load error")
	}
	if s.Banner() != "Failed to load orders or related data." {
		t.Fatalf("banner = %q", s.Banner())
	}
	if !reflect.DeepEqual(s.Visible(), before) || len(s.Products()) != 3 {
		t.Fatal("failed load must not touch any previous list")
	}
}

func TestSearchMatchesCustomerAndProductNames(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	if err := s.Load(context.Background()); err != nil {
		t.Fatal(err)
	}

	s.SetSearch("jane")
	if got := s.Visible(); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("customer search: %v", got)
	}
	s.SetSearch("cedar")
	if got := s.Visible(); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("product search: %v", got)
	}
}

func TestSubmitIncompleteDraftBlocked(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	s.OpenAdd()
	if err := s.Submit(ctx); !errors.Is(err, ErrIncomplete) {
		t.Fatalf("err = %v", err)
	}
	if s.Banner() != "Customer and at least one product are required." {
		t.Fatalf("banner = %q", s.Banner())
	}
	if len(f.created) != 0 {
		t.Fatal("incomplete draft must not reach the API")
	}

	s.Draft().CustomerID = 1
	if err := s.Submit(ctx); !errors.Is(err, ErrIncomplete) {
		t.Fatal("a customer without products is still incomplete")
	}
}

func TestSubmitCreatesOrderAndReloads(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}
	loadsBefore := f.listCalls

	s.OpenAdd()
	s.Draft().CustomerID = 1
	s.Draft().Toggle(1)
	s.Draft().Toggle(2)
	if got := s.PreviewTotal().StringFixed(2); got != "57.50" {
		t.Fatalf("preview = %q", got)
	}

	if err := s.Submit(ctx); err != nil {
		t.Fatal(err)
	}
	if len(f.created) != 1 {
		t.Fatalf("created = %v", f.created)
	}
	got := f.created[0]
	if got.CustomerID != 1 || len(got.ProductIDs) != 2 {
		t.Fatalf("payload = %+v", got)
	}
	if f.listCalls != loadsBefore+1 {
		t.Fatal("successful save must reload")
	}
	if s.Mode() != modal.Closed {
		t.Fatal("modal should close after a successful save")
	}
}

func TestOpenEditStartsWithEmptySelection(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	s.Draft().CustomerID = 2
	s.Draft().Toggle(3)
	s.OpenEdit(f.orders[0])

	if s.Draft().CustomerID != 0 || len(s.Draft().ProductIDs) != 0 {
		t.Fatalf("edit draft must start empty, got %+v", s.Draft())
	}
	if got := s.PreviewTotal().StringFixed(2); got != "0.00" {
		t.Fatalf("preview = %q", got)
	}
}

func TestSubmitEditUpdatesSelectedOrder(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	s.OpenEdit(f.orders[1]) // #2
	s.Draft().CustomerID = 1
	s.Draft().Toggle(3)
	if err := s.Submit(ctx); err != nil {
		t.Fatal(err)
	}
	got, ok := f.updated[2]
	if !ok || got.CustomerID != 1 || len(got.ProductIDs) != 1 || got.ProductIDs[0] != 3 {
		t.Fatalf("updated = %v", f.updated)
	}
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	f := seeded()
	f.createErr = errors.New("invalid reference")
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	s.OpenAdd()
	s.Draft().CustomerID = 1
	s.Draft().Toggle(1)
	if err := s.Submit(ctx); err == nil {
		t.Fatal("expected save error")
	}
	if s.Banner() != "Save failed. Ensure selections are valid." {
		t.Fatalf("banner = %q", s.Banner())
	}
	if s.Mode() != modal.Add || len(s.Draft().ProductIDs) != 1 {
		t.Fatal("draft and modal must survive a failed save")
	}
}

func TestConfirmDeleteDirect(t *testing.T) {
	f := seeded()
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	s.OpenDelete(f.orders[0])
	ran, err := s.ConfirmDelete(ctx)
	if !ran || err != nil {
		t.Fatalf("ran=%v err=%v", ran, err)
	}
	if len(f.deleted) != 1 || f.deleted[0] != 1 {
		t.Fatalf("deleted = %v", f.deleted)
	}
	if s.Mode() != modal.Closed {
		t.Fatal("modal should close after delete")
	}
}

func TestConfirmDeleteFailure(t *testing.T) {
	f := seeded()
	f.deleteErr = errors.New("boom")
	s := NewScreen(f)
	ctx := context.Background()
	if err := s.Load(ctx); err != nil {
		t.Fatal(err)
	}

	s.OpenDelete(f.orders[0])
	ran, err := s.ConfirmDelete(ctx)
	if !ran || err == nil {
		t.Fatalf("ran=%v err=%v", ran, err)
	}
	if s.Banner() != "Delete failed." {
		t.Fatalf("banner = %q", s.Banner())
	}
	if s.Mode() != modal.Closed {
		t.Fatal("modal closes regardless of delete outcome")
	}
}
