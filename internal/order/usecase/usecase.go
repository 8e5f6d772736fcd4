package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/internal/order"
	"github.com/fekuna/omnipos-sales-service/internal/order/dto"
	"github.com/fekuna/omnipos-sales-service/internal/order/events"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type orderUseCase struct {
	repo      order.Repository
	customers customer.Repository
	events    *events.Publisher
	logger    logger.ZapLogger
}

func NewOrderUseCase(repo order.Repository, customers customer.Repository, publisher *events.Publisher, log logger.ZapLogger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		customers: customers,
		events:    publisher,
		logger:    log,
	}
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	if input.CustomerID <= 0 {
		return nil, apperror.NewValidation("customer id must be a positive integer")
	}
	if input.OrderReference == "" {
		return nil, apperror.NewValidation("orderReference is required")
	}

	c, err := uc.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewReference("customer", input.CustomerID)
	}

	o := &model.Order{
		OrderDate:      time.Now().UTC(),
		OrderReference: input.OrderReference,
		CustomerID:     input.CustomerID,
	}
	if err := uc.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	uc.events.OrderCreated(ctx, o)
	return o, nil
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, orderID int64) error {
	rows, err := uc.repo.DeleteCascade(ctx, orderID)
	if err != nil {
		return err
	}
	// Deleting an unknown order is a no-op: repeated deletes converge to
	// the same state, so no error and no event.
	if rows > 0 {
		uc.events.OrderDeleted(ctx, orderID)
	}
	return nil
}

func (uc *orderUseCase) ListCustomerOrders(ctx context.Context, customerID int64) ([]model.CustomerOrder, error) {
	return uc.repo.FindByCustomer(ctx, customerID)
}
