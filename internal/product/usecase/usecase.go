package usecase

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
	"github.com/fekuna/omnipos-sales-service/internal/supplier"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type productUseCase struct {
	repo      product.Repository
	suppliers supplier.Repository
	logger    logger.ZapLogger
}

func NewProductUseCase(repo product.Repository, suppliers supplier.Repository, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		repo:      repo,
		suppliers: suppliers,
		logger:    log,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, nameFilter string) ([]model.ProductSupplier, error) {
	return uc.repo.FindAllWithSupplier(ctx, nameFilter)
}

func (uc *productUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	// Price and reference checks run before any write reaches the store.
	if input.UnitPrice <= 0 {
		return nil, apperror.NewValidation("unit price must be positive, got %v", input.UnitPrice)
	}
	if input.SupplierID <= 0 {
		return nil, apperror.NewValidation("supplier id must be a positive integer")
	}

	exists, err := uc.suppliers.Exists(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NewReference("supplier", input.SupplierID)
	}

	p := &model.Product{
		ProductName: input.ProductName,
		UnitPrice:   input.UnitPrice,
		SupplierID:  input.SupplierID,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
