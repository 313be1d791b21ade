package main

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fragranceshop/fragrance-admin/internal/httpx"
)

// In-memory rendition of the shop backend, for local development and tests.
// It enforces the one rule the admin's cascade exists to satisfy: a customer
// or product still referenced by an order cannot be deleted (409).

type customerRec struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type productRec struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Brand         string          `json:"brand"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Concentration *string         `json:"concentration,omitempty"`
	Description   *string         `json:"description,omitempty"`
}

type orderRec struct {
	ID          int64
	CustomerID  int64
	ProductIDs  []int64
	Total       decimal.Decimal
	DateCreated string
}

type customerReq struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type productReq struct {
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stockQuantity"`
	Concentration *string          `json:"concentration"`
	Description   *string          `json:"description"`
}

type orderReq struct {
	CustomerID int64   `json:"customerId"`
	ProductIDs []int64 `json:"productIds"`
}

type store struct {
	mu        sync.Mutex
	nextID    int64
	customers map[int64]*customerRec
	products  map[int64]*productRec
	orders    map[int64]*orderRec
}

func newStore() *store {
	return &store{
		customers: make(map[int64]*customerRec),
		products:  make(map[int64]*productRec),
		orders:    make(map[int64]*orderRec),
	}
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *store) customerHasOrders(id int64) bool {
	for _, o := range s.orders {
		if o.CustomerID == id {
			return true
		}
	}
	return false
}

func (s *store) productHasOrders(id int64) bool {
	for _, o := range s.orders {
		for _, pid := range o.ProductIDs {
			if pid == id {
				return true
			}
		}
	}
	return false
}

func (s *store) orderSummary(o *orderRec) gin.H {
	name := ""
	if c, ok := s.customers[o.CustomerID]; ok {
		name = c.FirstName + " " + c.LastName
	}
	names := make([]string, 0, len(o.ProductIDs))
	for _, pid := range o.ProductIDs {
		if p, ok := s.products[pid]; ok {
			names = append(names, p.Name)
		}
	}
	return gin.H{
		"id":           o.ID,
		"customerName": name,
		"products":     names,
		"totalAmount":  o.Total,
		"dateCreated":  o.DateCreated,
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func validCustomer(r customerReq) bool {
	return strings.TrimSpace(r.FirstName) != "" &&
		strings.TrimSpace(r.LastName) != "" &&
		strings.Contains(r.Email, "@")
}

func validProduct(r productReq) bool {
	return strings.TrimSpace(r.Name) != "" &&
		strings.TrimSpace(r.Brand) != "" &&
		r.Price != nil && r.Price.Sign() > 0 &&
		r.StockQuantity != nil && *r.StockQuantity >= 0
}

func newRouter(s *store) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	apiGroup := r.Group("/api")
	registerCustomers(apiGroup, s)
	registerProducts(apiGroup, s)
	registerOrders(apiGroup, s)
	return r
}

func registerCustomers(r *gin.RouterGroup, s *store) {
	r.GET("/customers", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]*customerRec, 0, len(s.customers))
		for _, v := range s.customers {
			out = append(out, v)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		c.JSON(http.StatusOK, out)
	})

	r.GET("/customers/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		v, ok := s.customers[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		c.JSON(http.StatusOK, v)
	})

	r.POST("/customers", func(c *gin.Context) {
		var in customerReq
		if err := c.ShouldBindJSON(&in); err != nil || !validCustomer(in) {
			httpx.Error(c, http.StatusBadRequest, "invalid customer")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, v := range s.customers {
			if strings.EqualFold(v.Email, in.Email) {
				httpx.Error(c, http.StatusConflict, "email already registered")
				return
			}
		}
		rec := &customerRec{ID: s.id(), FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}
		s.customers[rec.ID] = rec
		c.JSON(http.StatusCreated, rec)
	})

	r.PUT("/customers/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in customerReq
		if err := c.ShouldBindJSON(&in); err != nil || !validCustomer(in) {
			httpx.Error(c, http.StatusBadRequest, "invalid customer")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		rec, ok := s.customers[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		for _, v := range s.customers {
			if v.ID != id && strings.EqualFold(v.Email, in.Email) {
				httpx.Error(c, http.StatusConflict, "email already registered")
				return
			}
		}
		rec.FirstName, rec.LastName, rec.Email = in.FirstName, in.LastName, in.Email
		c.JSON(http.StatusOK, rec)
	})

	r.DELETE("/customers/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.customers[id]; !ok {
			httpx.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		if s.customerHasOrders(id) {
			httpx.Error(c, http.StatusConflict, "customer has orders")
			return
		}
		delete(s.customers, id)
		c.Status(http.StatusNoContent)
	})

	r.GET("/customers/:id/summary", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		v, ok := s.customers[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Customer not found")
			return
		}
		orders := make([]gin.H, 0)
		for _, o := range s.orders {
			if o.CustomerID == id {
				orders = append(orders, gin.H{
					"id":          o.ID,
					"totalAmount": o.Total,
					"dateCreated": o.DateCreated,
				})
			}
		}
		sort.Slice(orders, func(i, j int) bool { return orders[i]["id"].(int64) < orders[j]["id"].(int64) })
		c.JSON(http.StatusOK, gin.H{
			"id":        v.ID,
			"firstName": v.FirstName,
			"lastName":  v.LastName,
			"email":     v.Email,
			"orders":    orders,
		})
	})
}

func registerProducts(r *gin.RouterGroup, s *store) {
	r.GET("/products", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		out := make([]*productRec, 0, len(s.products))
		for _, v := range s.products {
			out = append(out, v)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
		c.JSON(http.StatusOK, out)
	})

	r.GET("/products/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		v, ok := s.products[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		c.JSON(http.StatusOK, v)
	})

	r.POST("/products", func(c *gin.Context) {
		var in productReq
		if err := c.ShouldBindJSON(&in); err != nil || !validProduct(in) {
			httpx.Error(c, http.StatusBadRequest, "invalid product")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		rec := &productRec{
			ID:            s.id(),
			Name:          in.Name,
			Brand:         in.Brand,
			Price:         *in.Price,
			StockQuantity: *in.StockQuantity,
			Concentration: in.Concentration,
			Description:   in.Description,
		}
		s.products[rec.ID] = rec
		c.JSON(http.StatusCreated, rec)
	})

	r.PUT("/products/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in productReq
		if err := c.ShouldBindJSON(&in); err != nil || !validProduct(in) {
			httpx.Error(c, http.StatusBadRequest, "invalid product")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		rec, ok := s.products[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		rec.Name, rec.Brand = in.Name, in.Brand
		rec.Price, rec.StockQuantity = *in.Price, *in.StockQuantity
		rec.Concentration, rec.Description = in.Concentration, in.Description
		c.JSON(http.StatusOK, rec)
	})

	r.DELETE("/products/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.products[id]; !ok {
			httpx.Error(c, http.StatusNotFound, "Product not found")
			return
		}
		if s.productHasOrders(id) {
			httpx.Error(c, http.StatusConflict, "product is referenced by orders")
			return
		}
		delete(s.products, id)
		c.Status(http.StatusNoContent)
	})
}

func registerOrders(r *gin.RouterGroup, s *store) {
	r.GET("/orders", func(c *gin.Context) {
		s.mu.Lock()
		defer s.mu.Unlock()
		recs := make([]*orderRec, 0, len(s.orders))
		for _, o := range s.orders {
			recs = append(recs, o)
		}
		sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
		out := make([]gin.H, 0, len(recs))
		for _, o := range recs {
			out = append(out, s.orderSummary(o))
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/orders", func(c *gin.Context) {
		var in orderReq
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid order")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		total, ok := s.checkOrder(c, in)
		if !ok {
			return
		}
		rec := &orderRec{
			ID:          s.id(),
			CustomerID:  in.CustomerID,
			ProductIDs:  in.ProductIDs,
			Total:       total,
			DateCreated: time.Now().UTC().Format("2006-01-02T15:04:05"),
		}
		s.orders[rec.ID] = rec
		c.JSON(http.StatusCreated, s.orderSummary(rec))
	})

	r.PUT("/orders/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		var in orderReq
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.Error(c, http.StatusBadRequest, "invalid order")
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		rec, ok := s.orders[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		total, ok := s.checkOrder(c, in)
		if !ok {
			return
		}
		rec.CustomerID, rec.ProductIDs, rec.Total = in.CustomerID, in.ProductIDs, total
		c.JSON(http.StatusOK, s.orderSummary(rec))
	})

	r.DELETE("/orders/:id", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.orders[id]; !ok {
			httpx.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		delete(s.orders, id)
		c.Status(http.StatusNoContent)
	})

	r.GET("/orders/:id/summary", func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		o, ok := s.orders[id]
		if !ok {
			httpx.Error(c, http.StatusNotFound, "Order not found")
			return
		}
		cust := s.customers[o.CustomerID]
		names := make([]string, 0, len(o.ProductIDs))
		for _, pid := range o.ProductIDs {
			if p, ok := s.products[pid]; ok {
				names = append(names, p.Name)
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"id": o.ID,
			"customer": gin.H{
				"id":        cust.ID,
				"firstName": cust.FirstName,
				"lastName":  cust.LastName,
			},
			"products":    names,
			"totalAmount": o.Total,
			"dateCreated": o.DateCreated,
		})
	})
}

// checkOrder validates the references and computes the total. Caller holds the
// lock; on failure the response has already been written.
func (s *store) checkOrder(c *gin.Context, in orderReq) (decimal.Decimal, bool) {
	if _, ok := s.customers[in.CustomerID]; !ok {
		httpx.Error(c, http.StatusNotFound, "Customer not found")
		return decimal.Zero, false
	}
	total := decimal.Zero
	found := 0
	for _, pid := range in.ProductIDs {
		if p, ok := s.products[pid]; ok {
			total = total.Add(p.Price)
			found++
		}
	}
	if found == 0 {
		httpx.Error(c, http.StatusNotFound, "No valid products found")
		return decimal.Zero, false
	}
	return total, true
}
