package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/order"
	"github.com/fekuna/omnipos-sales-service/internal/order/dto"
	"github.com/fekuna/omnipos-sales-service/pkg/httputil"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

type createOrderRequest struct {
	OrderReference string `json:"orderReference"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId", "customer id")
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(h.logger, w, apperror.NewValidation("invalid request body"))
		return
	}

	o, err := h.uc.CreateOrder(r.Context(), &dto.CreateOrderInput{
		CustomerID:     customerID,
		OrderReference: req.OrderReference,
	})
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r, "orderId", "order id")
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}

	if err := h.uc.DeleteOrder(r.Context(), orderID); err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "order deleted")
}

func (h *OrderHandler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customerId", "customer id")
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}

	rows, err := h.uc.ListCustomerOrders(r.Context(), customerID)
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rows)
}

func pathID(r *http.Request, param, label string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil {
		return 0, apperror.NewValidation("%s must be a number", label)
	}
	return id, nil
}
