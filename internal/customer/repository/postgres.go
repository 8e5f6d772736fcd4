package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/fekuna/omnipos-sales-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	query := `SELECT id, name, address, city, country FROM customers ORDER BY id`
	if err := r.DB.SelectContext(ctx, &customers, query); err != nil {
		return nil, errors.Wrap(err, "customer repository: find all")
	}
	return customers, nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	query := `SELECT id, name, address, city, country FROM customers WHERE id = $1`
	err := r.DB.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "customer repository: find by id")
	}
	return &customer, nil
}

func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (name, address, city, country)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	err := r.DB.QueryRowxContext(ctx, query, c.Name, c.Address, c.City, c.Country).Scan(&c.ID)
	if err != nil {
		return errors.Wrap(err, "customer repository: create")
	}
	return nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) (int64, error) {
	query := `
        UPDATE customers
        SET name = $1, address = $2, city = $3, country = $4
        WHERE id = $5
    `
	res, err := r.DB.ExecContext(ctx, query, c.Name, c.Address, c.City, c.Country, c.ID)
	if err != nil {
		return 0, errors.Wrap(err, "customer repository: update")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "customer repository: update rows affected")
	}
	return rows, nil
}

func (r *PGRepository) DeleteIfNoOrders(ctx context.Context, id int64) (int64, error) {
	// The zero-orders precondition lives inside the statement so the check
	// and the delete are one atomic operation. A separate existence read
	// here would reopen the race with concurrent order creation.
	query := `
        DELETE FROM customers
        WHERE id = $1
          AND NOT EXISTS (SELECT 1 FROM orders WHERE orders.customer_id = customers.id)
    `
	res, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, errors.Wrap(err, "customer repository: conditional delete")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "customer repository: delete rows affected")
	}
	return rows, nil
}
