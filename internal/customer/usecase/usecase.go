package usecase

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

type customerUseCase struct {
	repo   customer.Repository
	logger logger.ZapLogger
}

func NewCustomerUseCase(repo customer.Repository, log logger.ZapLogger) customer.UseCase {
	return &customerUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *customerUseCase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *customerUseCase) GetCustomer(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NewNotFound("customer", id)
	}
	return c, nil
}

func (uc *customerUseCase) CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error) {
	c := &model.Customer{
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *customerUseCase) UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error) {
	c := &model.Customer{
		ID:      input.ID,
		Name:    input.Name,
		Address: input.Address,
		City:    input.City,
		Country: input.Country,
	}
	rows, err := uc.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	// Zero rows affected means the customer never existed; reporting
	// success here would hide client bugs.
	if rows == 0 {
		return nil, apperror.NewNotFound("customer", input.ID)
	}
	return c, nil
}

func (uc *customerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	rows, err := uc.repo.DeleteIfNoOrders(ctx, id)
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	// The conditional delete did nothing: either the customer is missing
	// or it still owns orders. The follow-up read only picks the error;
	// the delete itself was already atomic.
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperror.NewNotFound("customer", id)
	}
	return apperror.NewConflict("customer %d still has orders", id)
}
