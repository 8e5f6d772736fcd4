package handler

import (
	"net/http"

	"github.com/fekuna/omnipos-sales-service/internal/supplier"
	"github.com/fekuna/omnipos-sales-service/pkg/httputil"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type SupplierHandler struct {
	uc     supplier.UseCase
	logger logger.ZapLogger
}

func NewSupplierHandler(uc supplier.UseCase, log logger.ZapLogger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.uc.ListSuppliers(r.Context())
	if err != nil {
		httputil.WriteError(h.logger, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, suppliers)
}
