package customer

import (
	"context"

	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type UseCase interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*model.Customer, error)
	CreateCustomer(ctx context.Context, input *dto.CreateCustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, input *dto.UpdateCustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}
