package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type CustomerRepo interface {
	CountActive(ctx context.Context) (int, error)
}

type sqlCustomerRepo struct {
	DB *sql.DB
}

func NewCustomerRepo(d *sql.DB) CustomerRepo {
	return &sqlCustomerRepo{DB: d}
}

func (r *sqlCustomerRepo) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers WHERE is_active = true").Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting customers: %w", err)
	}
	return n, nil
}
