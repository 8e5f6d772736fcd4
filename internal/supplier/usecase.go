package supplier

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type UseCase interface {
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
}
