package supplier

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

// Suppliers are read-only in this service; rows are seeded out of band.
type Repository interface {
	FindAll(ctx context.Context) ([]model.Supplier, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
