package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type fakeUseCase struct {
	rows        []model.ProductSupplier
	seenFilters []string
	created     []*dto.CreateProductInput
}

func (f *fakeUseCase) ListProducts(ctx context.Context, nameFilter string) ([]model.ProductSupplier, error) {
	f.seenFilters = append(f.seenFilters, nameFilter)
	if nameFilter == "" {
		return f.rows, nil
	}
	out := []model.ProductSupplier{}
	for _, row := range f.rows {
		if row.ProductName == nameFilter {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	if input.UnitPrice <= 0 {
		return nil, apperror.NewValidation("unit price must be positive, got %v", input.UnitPrice)
	}
	if input.SupplierID != 1 {
		return nil, apperror.NewReference("supplier", input.SupplierID)
	}
	f.created = append(f.created, input)
	return &model.Product{ID: 1, ProductName: input.ProductName, UnitPrice: input.UnitPrice, SupplierID: input.SupplierID}, nil
}

func newRouter(uc *fakeUseCase) *chi.Mux {
	h := NewProductHandler(uc, logger.NewNop())
	r := chi.NewRouter()
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	return r
}

func TestListProducts_WithAndWithoutFilterShareOneShape(t *testing.T) {
	uc := &fakeUseCase{rows: []model.ProductSupplier{
		{ProductName: "Cup", SupplierName: "Acme"},
		{ProductName: "Mug", SupplierName: "Acme"},
	}}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var all []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 2)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products?name=Cup", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var filtered []map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Cup", filtered[0]["product_name"])

	// Same columns either way.
	for _, row := range append(all, filtered...) {
		assert.Len(t, row, 2)
		assert.Contains(t, row, "product_name")
		assert.Contains(t, row, "supplier_name")
	}

	assert.Equal(t, []string{"", "Cup"}, uc.seenFilters)
}

func TestCreateProduct_NegativePriceIs400AndNothingIsWritten(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	body := `{"productName":"Mug","unitPrice":-1,"supplierId":1}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unit price must be positive")
	assert.Empty(t, uc.created)
}

func TestCreateProduct_UnknownSupplierIs400(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	body := `{"productName":"Mug","unitPrice":5,"supplierId":99}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "supplier 99 does not exist")
	assert.Empty(t, uc.created)
}

func TestCreateProduct_MissingNameIs400(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	body := `{"unitPrice":5,"supplierId":1}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "productName is required")
}

func TestCreateProduct_Succeeds(t *testing.T) {
	uc := &fakeUseCase{}
	r := newRouter(uc)

	rec := httptest.NewRecorder()
	body := `{"productName":"Mug","unitPrice":5,"supplierId":1}`
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_name":"Mug"`)
	require.Len(t, uc.created, 1)
	assert.Equal(t, int64(1), uc.created[0].SupplierID)
}
