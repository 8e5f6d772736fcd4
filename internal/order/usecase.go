package order

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/order/dto"
)

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	ListCustomerOrders(ctx context.Context, customerID int64) ([]model.CustomerOrder, error)
}
