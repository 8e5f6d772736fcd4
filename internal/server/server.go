// Package server wires the HTTP surface: router, middleware, routes.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	customerH "github.com/fekuna/omnipos-sales-service/internal/customer/handler"
	orderH "github.com/fekuna/omnipos-sales-service/internal/order/handler"
	productH "github.com/fekuna/omnipos-sales-service/internal/product/handler"
	supplierH "github.com/fekuna/omnipos-sales-service/internal/supplier/handler"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type Server struct {
	router *chi.Mux
	logger logger.ZapLogger
}

func New(
	log logger.ZapLogger,
	customers *customerH.CustomerHandler,
	suppliers *supplierH.SupplierHandler,
	products *productH.ProductHandler,
	orders *orderH.OrderHandler,
) *Server {
	s := &Server{
		router: chi.NewRouter(),
		logger: log,
	}

	r := s.router
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", customers.ListCustomers)
		r.Post("/", customers.CreateCustomer)
		r.Get("/{customerId}", customers.GetCustomer)
		r.Put("/{customerId}", customers.UpdateCustomer)
		r.Delete("/{customerId}", customers.DeleteCustomer)
		r.Get("/{customerId}/orders", orders.ListCustomerOrders)
		r.Post("/{customerId}/orders", orders.CreateOrder)
	})

	r.Get("/suppliers", suppliers.ListSuppliers)

	r.Route("/products", func(r chi.Router) {
		r.Get("/", products.ListProducts)
		r.Post("/", products.CreateProduct)
	})

	r.Delete("/orders/{orderId}", orders.DeleteOrder)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}
