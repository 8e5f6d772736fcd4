package order

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, order *model.Order) error
	// DeleteCascade removes an order and its items in one transaction so a
	// mid-sequence failure cannot leave orphan items. Returns the number of
	// order rows removed (0 or 1).
	DeleteCascade(ctx context.Context, orderID int64) (int64, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]model.CustomerOrder, error)
}
