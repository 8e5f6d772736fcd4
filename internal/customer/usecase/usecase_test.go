package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-sales-service/internal/apperror"
	"github.com/fekuna/omnipos-sales-service/internal/customer/dto"
	"github.com/fekuna/omnipos-sales-service/internal/model"
	"github.com/fekuna/omnipos-sales-service/pkg/logger"
)

// fakeCustomerRepo keeps customers in a map; hasOrders marks the ones whose
// conditional delete must refuse.
type fakeCustomerRepo struct {
	customers  map[int64]model.Customer
	hasOrders  map[int64]bool
	updateRows int64
}

func (f *fakeCustomerRepo) FindAll(ctx context.Context) ([]model.Customer, error) {
	out := []model.Customer{}
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	c.ID = int64(len(f.customers) + 1)
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *model.Customer) (int64, error) {
	return f.updateRows, nil
}

func (f *fakeCustomerRepo) DeleteIfNoOrders(ctx context.Context, id int64) (int64, error) {
	if _, ok := f.customers[id]; !ok {
		return 0, nil
	}
	if f.hasOrders[id] {
		return 0, nil
	}
	delete(f.customers, id)
	return 1, nil
}

func TestGetCustomer_NotFound(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[int64]model.Customer{}}
	uc := NewCustomerUseCase(repo, logger.NewNop())

	_, err := uc.GetCustomer(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateCustomer_ZeroRowsIsNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[int64]model.Customer{}, updateRows: 0}
	uc := NewCustomerUseCase(repo, logger.NewNop())

	_, err := uc.UpdateCustomer(context.Background(), &dto.UpdateCustomerInput{ID: 42, Name: "Ana"})

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateCustomer_Succeeds(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[int64]model.Customer{}, updateRows: 1}
	uc := NewCustomerUseCase(repo, logger.NewNop())

	c, err := uc.UpdateCustomer(context.Background(), &dto.UpdateCustomerInput{
		ID: 7, Name: "Ana", Address: "Calle 1", City: "Lima", Country: "Peru",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, int64(7), c.ID)
}

func TestDeleteCustomer_WithOrdersIsConflict(t *testing.T) {
	repo := &fakeCustomerRepo{
		customers: map[int64]model.Customer{7: {ID: 7, Name: "Ana"}},
		hasOrders: map[int64]bool{7: true},
	}
	uc := NewCustomerUseCase(repo, logger.NewNop())

	err := uc.DeleteCustomer(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, apperror.IsConflict(err))
	// Customer and its orders stay intact.
	c, _ := repo.FindByID(context.Background(), 7)
	assert.NotNil(t, c)
}

func TestDeleteCustomer_UnknownIsNotFound(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[int64]model.Customer{}, hasOrders: map[int64]bool{}}
	uc := NewCustomerUseCase(repo, logger.NewNop())

	err := uc.DeleteCustomer(context.Background(), 999)

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteCustomer_WithoutOrdersSucceeds(t *testing.T) {
	repo := &fakeCustomerRepo{
		customers: map[int64]model.Customer{3: {ID: 3, Name: "Luis"}},
		hasOrders: map[int64]bool{},
	}
	uc := NewCustomerUseCase(repo, logger.NewNop())

	err := uc.DeleteCustomer(context.Background(), 3)

	require.NoError(t, err)
	c, _ := repo.FindByID(context.Background(), 3)
	assert.Nil(t, c)
}
