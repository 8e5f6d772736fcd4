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

func (r *PGRepository) FindAllWithSupplier(ctx context.Context, nameFilter string) ([]model.ProductSupplier, error) {
	rows := []model.ProductSupplier{}

	query := `
        SELECT products.product_name, suppliers.supplier_name
        FROM products
        JOIN suppliers ON suppliers.id = products.supplier_id
    `
	args := []interface{}{}
	if nameFilter != "" {
		query += ` WHERE products.product_name = $1`
		args = append(args, nameFilter)
	}
	query += ` ORDER BY products.product_name`

	if err := r.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "product repository: find all with supplier")
	}
	return rows, nil
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (product_name, unit_price, supplier_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.DB.QueryRowxContext(ctx, query, p.ProductName, p.UnitPrice, p.SupplierID).Scan(&p.ID)
	if err != nil {
		return errors.Wrap(err, "product repository: create")
	}
	return nil
}
