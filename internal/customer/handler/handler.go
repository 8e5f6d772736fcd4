package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/pkg/httputil"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type CustomerHandler struct {
	uc     customer.UseCase
	logger logger.ZapLogger
}

func NewCustomerHandler(uc customer.UseCase, log logger.ZapLogger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: log,
	}
}

type customerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.uc.ListCustomers(r.Context())
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}

	c, err := h.uc.GetCustomer(r.Context(), id)
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(h.logger, w, apperror.NewValidation("invalid request body"))
		return
	}
	if req.Name == "" {
		httputil.WriteError(h.logger, w, apperror.NewValidation("name is required"))
		return
	}

	c, err := h.uc.CreateCustomer(r.Context(), &dto.CreateCustomerInput{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(h.logger, w, apperror.NewValidation("invalid request body"))
		return
	}
	if req.Name == "" {
		httputil.WriteError(h.logger, w, apperror.NewValidation("name is required"))
		return
	}

	c, err := h.uc.UpdateCustomer(r.Context(), &dto.UpdateCustomerInput{
		ID:      id,
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
	})
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := customerID(r)
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}

	if err := h.uc.DeleteCustomer(r.Context(), id); err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "customer deleted")
}

func customerID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "customerId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewValidation("customer id must be a number")
	}
	return id, nil
}
