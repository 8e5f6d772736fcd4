package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/order/dto"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type fakeUseCase struct {
	knownCustomers map[int64]bool
	created        []*dto.CreateOrderInput
	deleted        []int64
	rows           []model.CustomerOrder
}

func (f *fakeUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if input.CustomerID <= 0 {
		return nil, apperror.NewValidation("customer id must be a positive integer")
	}
	if !f.knownCustomers[input.CustomerID] {
		return nil, apperror.NewReference("customer", input.CustomerID)
	}
	f.created = append(f.created, input)
	return &model.Order{ID: 1, OrderDate: time.Now().UTC(), OrderReference: input.OrderReference, CustomerID: input.CustomerID}, nil
}

func (f *fakeUseCase) DeleteOrder(ctx context.Context, orderID int64) error {
	f.deleted = append(f.deleted, orderID)
	return nil
}

func (f *fakeUseCase) ListCustomerOrders(ctx context.Context, customerID int64) ([]model.CustomerOrder, error) {
	return f.rows, nil
}

func newRouter(uc *fakeUseCase) *chi.Mux {
	h := NewOrderHandler(uc, logger.NewNop())
	r := chi.NewRouter()
	r.Post("/customers/{customerId}/orders", h.CreateOrder)
	r.Get("/customers/{customerId}/orders", h.ListCustomerOrders)
	r.Delete("/orders/{orderId}", h.DeleteOrder)
	return r
}

func TestCreateOrder_Succeeds(t *testing.T) {
	uc := &fakeUseCase{knownCustomers: map[int64]bool{5: true}}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers/5/orders", strings.NewReader(`{"orderReference":"ORD010"}`))
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"order_reference":"ORD010"`)
	require.Len(t, uc.created, 1)
	assert.Equal(t, int64(5), uc.created[0].CustomerID)
}

func TestCreateOrder_UnknownCustomerIs400(t *testing.T) {
	uc := &fakeUseCase{knownCustomers: map[int64]bool{}}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers/999/orders", strings.NewReader(`{"orderReference":"ORD010"}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "customer 999 does not exist")
	assert.Empty(t, uc.created)
}

func TestCreateOrder_NonNumericCustomerIDIs400(t *testing.T) {
	uc := &fakeUseCase{knownCustomers: map[int64]bool{}}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers/abc/orders", strings.NewReader(`{"orderReference":"ORD010"}`))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.created)
}

func TestDeleteOrder_Succeeds(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/orders/12", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "order deleted")
	assert.Equal(t, []int64{12}, uc.deleted)
}

func TestListCustomerOrders_ReturnsJoinedRows(t *testing.T) {
	uc := &fakeUseCase{rows: []model.CustomerOrder{
		{
			OrderReference: "ORD010",
			OrderDate:      time.Date(2019, 5, 10, 0, 0, 0, 0, time.UTC),
			ProductName:    "Mug",
			Quantity:       2,
			UnitPrice:      5,
			SupplierName:   "Acme",
		},
	}}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/customers/5/orders", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"order_reference":"ORD010"`)
	assert.Contains(t, body, `"product_name":"Mug"`)
	assert.Contains(t, body, `"supplier_name":"Acme"`)
	assert.Contains(t, body, `"quantity":2`)
	assert.Contains(t, body, `"unit_price":5`)
}
