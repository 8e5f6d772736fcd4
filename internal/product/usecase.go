package product

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/product/dto"
)

type UseCase interface {
	ListProducts(ctx context.Context, nameFilter string) ([]model.ProductSupplier, error)
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
}
