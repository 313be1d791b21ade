package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListCustomersDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/customers" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"firstName":"Jane","lastName":"Doe","email":"jane@x.com"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/api/")
	got, err := c.ListCustomers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].FirstName != "Jane" || got[0].ID != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestProductPriceDecodesFromJSONNumber(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":4,"name":"Velvet Oud","brand":"Maison Test","price":79.9,"stockQuantity":3,"concentration":"EDP"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	p, err := c.GetProduct(context.Background(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.Price.StringFixed(2) != "79.90" {
		t.Fatalf("price = %s", p.Price)
	}
	if p.Concentration == nil || *p.Concentration != "EDP" {
		t.Fatalf("concentration = %v", p.Concentration)
	}
}

func TestCreateCustomerSendsJSONBody(t *testing.T) {
	var got CustomerInput
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content-type = %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Error(err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := New(srv.URL)
	in := CustomerInput{FirstName: "Jane", LastName: "Doe", Email: "jane@x.com"}
	if err := c.CreateCustomer(context.Background(), in); err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Fatalf("body = %+v", got)
	}
}

func TestNotFoundMapsToErrNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Customer not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.GetCustomer(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestConflictMapsToErrConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"customer has orders"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.DeleteCustomer(context.Background(), 7); !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v", err)
	}
}

func TestServerErrorIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListOrders(context.Background())
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v", err)
	}
}

func TestDeleteNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/orders/55" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL + "/api")
	if err := c.DeleteOrder(context.Background(), 55); err != nil {
		t.Fatal(err)
	}
}

func TestCustomerSummaryDecodesOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customers/7/summary" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"firstName":"Jane","lastName":"Doe","email":"jane@x.com",
			"orders":[{"id":101,"totalAmount":45.0,"dateCreated":"2026-01-05T10:00:00"},
			          {"id":102,"totalAmount":12.5,"dateCreated":"2026-01-06T10:00:00"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	sum, err := c.CustomerSummary(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if sum.ID != 7 || len(sum.Orders) != 2 || sum.Orders[1].ID != 102 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.Orders[0].TotalAmount.StringFixed(2) != "45.00" {
		t.Fatalf("total = %s", sum.Orders[0].TotalAmount)
	}
}
