package usecase

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/supplier"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type supplierUseCase struct {
	repo   supplier.Repository
	logger logger.ZapLogger
}

func NewSupplierUseCase(repo supplier.Repository, log logger.ZapLogger) supplier.UseCase {
	return &supplierUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *supplierUseCase) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return uc.repo.FindAll(ctx)
}
