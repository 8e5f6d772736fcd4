package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/product"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/pkg/httputil"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

type createProductRequest struct {
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	SupplierID  int64   `json:"supplierId"`
}

func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	nameFilter := r.URL.Query().Get("name")

	rows, err := h.uc.ListProducts(r.Context(), nameFilter)
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, rows)
}

func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(h.logger, w, apperror.NewValidation("invalid request body"))
		return
	}
	if req.ProductName == "" {
		httputil.WriteError(h.logger, w, apperror.NewValidation("productName is required"))
		return
	}

	p, err := h.uc.CreateProduct(r.Context(), &dto.CreateProductInput{
		ProductName: req.ProductName,
		UnitPrice:   req.UnitPrice,
		SupplierID:  req.SupplierID,
	})
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, p)
}
