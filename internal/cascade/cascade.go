// Package cascade removes the orders that block deleting a customer or product.
//
// The backend rejects deleting an entity still referenced by an order, and the
// REST boundary offers no cross-entity transaction, so each coordinator runs a
// best-effort saga: discover dependent orders, delete them in parallel, wait for
// all of them to settle, then delete the parent. There is no rollback; an
// interrupted run can leave dependents deleted while the parent survives.
package cascade

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/fragranceshop/fragrance-admin/internal/api"
)

type Outcome int

const (
	// Full: every targeted dependent and the parent were deleted.
	Full Outcome = iota
	// Partial: the parent was deleted but some dependents were not.
	Partial
	// Failed: the parent delete itself failed.
	Failed
)

// Result is the explicit account of one cascade run. Sub-delete failures are
// recorded here rather than reported individually to the caller.
type Result struct {
	// Dependents are the order ids targeted for cleanup.
	Dependents []int64
	// Removed are the order ids actually deleted.
	Removed []int64
	// FailedDeps are the order ids whose delete failed and was tolerated.
	FailedDeps []int64
	// Err is the parent delete error, if any.
	Err error
}

func (r Result) Outcome() Outcome {
	switch {
	case r.Err != nil:
		return Failed
	case len(r.FailedDeps) > 0:
		return Partial
	default:
		return Full
	}
}

type OrderDeleter interface {
	DeleteOrder(ctx context.Context, id int64) error
}

type CustomerGateway interface {
	OrderDeleter
	CustomerSummary(ctx context.Context, id int64) (*api.CustomerSummary, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type ProductGateway interface {
	OrderDeleter
	ListOrders(ctx context.Context) ([]api.OrderSummary, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// Customer deletes every order in the customer's summary, then the customer.
// A failed summary fetch skips cleanup and goes straight to the customer
// delete, matching the best-effort contract.
func Customer(ctx context.Context, gw CustomerGateway, id int64) Result {
	var res Result
	if sum, err := gw.CustomerSummary(ctx, id); err != nil {
		log.Printf("[cascade] customer %d: summary fetch failed, deleting directly: %v", id, err)
	} else {
		for _, o := range sum.Orders {
			res.Dependents = append(res.Dependents, o.ID)
		}
	}
	res.Removed, res.FailedDeps = fanOutDeletes(ctx, gw, res.Dependents)
	res.Err = gw.DeleteCustomer(ctx, id)
	return res
}

// Product deletes every order whose product-name list mentions the product's
// name (case-insensitive substring, the only join the summary rows allow),
// then the product itself. A failed order listing skips cleanup.
func Product(ctx context.Context, gw ProductGateway, p api.Product) Result {
	var res Result
	if orders, err := gw.ListOrders(ctx); err != nil {
		log.Printf("[cascade] product %d: order listing failed, deleting directly: %v", p.ID, err)
	} else {
		name := strings.ToLower(p.Name)
		for _, o := range orders {
			for _, pn := range o.Products {
				if strings.Contains(strings.ToLower(pn), name) {
					res.Dependents = append(res.Dependents, o.ID)
					break
				}
			}
		}
	}
	res.Removed, res.FailedDeps = fanOutDeletes(ctx, gw, res.Dependents)
	res.Err = gw.DeleteProduct(ctx, p.ID)
	return res
}

// fanOutDeletes issues every order delete concurrently and waits for all of
// them to settle. Failures are collected, never short-circuited.
func fanOutDeletes(ctx context.Context, d OrderDeleter, ids []int64) (removed, failed []int64) {
	if len(ids) == 0 {
		return nil, nil
	}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, id := range ids {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := d.DeleteOrder(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("[cascade] order %d: delete failed: %v", id, err)
				failed = append(failed, id)
				return
			}
			removed = append(removed, id)
		}()
	}
	wg.Wait()
	return removed, failed
}
