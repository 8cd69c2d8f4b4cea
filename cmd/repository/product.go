package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrSKUTaken = errors.New("sku already exists")
)

// isUniqueViolation reconoce el código 23505 de Postgres.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// ProductRepo define la interfaz para acceso a productos.
type ProductRepo interface {
	List(ctx context.Context, q model.ProductQuery) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	CountLowStock(ctx context.Context) (int, error)
}

type sqlProductRepo struct {
	DB *sql.DB
}

// NewProductRepo construye un repository sobre una conexión ya iniciada.
func NewProductRepo(d *sql.DB) ProductRepo {
	return &sqlProductRepo{DB: d}
}

const productColumns = "id, name, sku, category, description, price, cost_price, stock_quantity, min_stock_level, is_active, created_at, updated_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Description, &p.Price, &p.CostPrice,
		&p.StockQuantity, &p.MinStockLevel, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
}

// List aplica los filtros de igualdad y el predicado de stock bajo,
// ordenando por fecha de creación descendente.
func (r *sqlProductRepo) List(ctx context.Context, q model.ProductQuery) ([]model.Product, error) {
	var (
		where []string
		args  []any
	)
	if q.ActiveOnly {
		where = append(where, "is_active = true")
	}
	if q.Category != "" {
		args = append(args, q.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if q.LowStockOnly {
		where = append(where, "stock_quantity <= min_stock_level")
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("error reading product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing products: %w", err)
	}
	return products, nil
}

func (r *sqlProductRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	var p model.Product
	row := r.DB.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id)
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting product: %w", err)
	}
	return &p, nil
}

// Create asigna un UUID nuevo y devuelve las marcas de tiempo de la base.
func (r *sqlProductRepo) Create(ctx context.Context, p *model.Product) error {
	p.ID = uuid.NewString()
	query := `INSERT INTO products (id, name, sku, category, description, price, cost_price, stock_quantity, min_stock_level, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query,
		p.ID, p.Name, p.SKU, p.Category, p.Description, p.Price, p.CostPrice,
		p.StockQuantity, p.MinStockLevel, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSKUTaken
		}
		return fmt.Errorf("error inserting product: %w", err)
	}
	return nil
}

func (r *sqlProductRepo) Update(ctx context.Context, p *model.Product) error {
	if _, err := uuid.Parse(p.ID); err != nil {
		return ErrNotFound
	}
	query := `UPDATE products SET name = $1, sku = $2, category = $3, description = $4, price = $5, cost_price = $6,
stock_quantity = $7, min_stock_level = $8, is_active = $9, updated_at = now()
WHERE id = $10 RETURNING created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query,
		p.Name, p.SKU, p.Category, p.Description, p.Price, p.CostPrice,
		p.StockQuantity, p.MinStockLevel, p.IsActive, p.ID,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err) {
			return ErrSKUTaken
		}
		return fmt.Errorf("error updating product: %w", err)
	}
	return nil
}

// Delete borra la fila definitivamente.
func (r *sqlProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sqlProductRepo) CountLowStock(ctx context.Context) (int, error) {
	var n int
	query := "SELECT COUNT(*) FROM products WHERE is_active = true AND stock_quantity <= min_stock_level"
	if err := r.DB.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting low stock products: %w", err)
	}
	return n, nil
}
