package customer

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, customer *model.Customer) error
	// Update returns the number of rows affected so callers can detect
	// updates against a missing customer.
	Update(ctx context.Context, customer *model.Customer) (int64, error)
	// DeleteIfNoOrders issues a single conditional DELETE whose predicate
	// encodes the zero-orders rule. Zero rows affected means the customer
	// is missing or still owns orders; it never means a partial delete.
	DeleteIfNoOrders(ctx context.Context, id int64) (int64, error)
}
