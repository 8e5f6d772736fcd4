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

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	query := `SELECT id, supplier_name FROM suppliers ORDER BY id`
	if err := r.DB.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, errors.Wrap(err, "supplier repository: find all")
	}
	return suppliers, nil
}

func (r *PGRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`
	if err := r.DB.GetContext(ctx, &exists, query, id); err != nil {
		return false, errors.Wrap(err, "supplier repository: exists")
	}
	return exists, nil
}
