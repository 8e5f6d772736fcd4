package product

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type Repository interface {
	// FindAllWithSupplier joins products to their suppliers. An empty
	// nameFilter returns the full set; a non-empty one restricts to exact
	// matches on product name. The projection is the same either way.
	FindAllWithSupplier(ctx context.Context, nameFilter string) ([]model.ProductSupplier, error)
	Create(ctx context.Context, product *model.Product) error
}
