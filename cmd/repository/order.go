package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

type OrderRepo interface {
	ListRecent(ctx context.Context, status *model.OrderStatus, limit int) ([]model.Order, error)
	ListForStats(ctx context.Context) ([]model.Order, error)
}

type sqlOrderRepo struct {
	DB *sql.DB
}

func NewOrderRepo(d *sql.DB) OrderRepo {
	return &sqlOrderRepo{DB: d}
}

// ListRecent devuelve los últimos pedidos con el nombre del cliente, si lo hay.
func (r *sqlOrderRepo) ListRecent(ctx context.Context, status *model.OrderStatus, limit int) ([]model.Order, error) {
	query := `SELECT o.id, o.order_number, o.total_amount, o.status, o.created_at, c.name
FROM orders o LEFT JOIN customers c ON c.id = o.customer_id`
	args := []any{}
	if status != nil {
		args = append(args, string(*status))
		query += " WHERE o.status = $1"
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY o.created_at DESC LIMIT $%d", len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var (
			o    model.Order
			name sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.TotalAmount, &o.Status, &o.CreatedAt, &name); err != nil {
			return nil, fmt.Errorf("error reading order row: %w", err)
		}
		if name.Valid {
			o.Customer = &model.CustomerRef{Name: name.String}
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	return orders, nil
}

// ListForStats trae sólo las columnas que necesita el tablero.
func (r *sqlOrderRepo) ListForStats(ctx context.Context) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, order_number, total_amount, status, created_at FROM orders")
	if err != nil {
		return nil, fmt.Errorf("error loading orders for stats: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.TotalAmount, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("error reading order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error loading orders for stats: %w", err)
	}
	return orders, nil
}
