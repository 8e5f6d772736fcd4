package repository

import (
	"context"

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

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (order_date, order_reference, customer_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.DB.QueryRowxContext(ctx, query, o.OrderDate, o.OrderReference, o.CustomerID).Scan(&o.ID)
	if err != nil {
		return errors.Wrap(err, "order repository: create")
	}
	return nil
}

func (r *PGRepository) DeleteCascade(ctx context.Context, orderID int64) (int64, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "order repository: begin delete cascade")
	}
	defer tx.Rollback()

	// Items go first; the commit makes both deletes visible together.
	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return 0, errors.Wrap(err, "order repository: delete order items")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, orderID)
	if err != nil {
		return 0, errors.Wrap(err, "order repository: delete order")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "order repository: delete rows affected")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "order repository: commit delete cascade")
	}
	return rows, nil
}

// FindByCustomer uses inner joins throughout: orders without items, and
// items whose product or supplier row is missing, are omitted from the
// result. Returning one row per order item is the intended shape.
func (r *PGRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.CustomerOrder, error) {
	rows := []model.CustomerOrder{}
	query := `
        SELECT o.order_reference, o.order_date, p.product_name,
               oi.quantity, p.unit_price, s.supplier_name
        FROM orders o
        JOIN order_items oi ON oi.order_id = o.id
        JOIN products p ON p.id = oi.product_id
        JOIN suppliers s ON s.id = p.supplier_id
        WHERE o.customer_id = $1
        ORDER BY o.order_date, o.order_reference
    `
	if err := r.DB.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, errors.Wrap(err, "order repository: find by customer")
	}
	return rows, nil
}
