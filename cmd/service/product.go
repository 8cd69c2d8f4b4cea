package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fidellopezm03/giakiemso-backend/cmd/inventory"
	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
)

const (
	defaultMinStockLevel = 5
	defaultAlertLimit    = 10
	maxAlertLimit        = 100
)

type ProductService interface {
	List(ctx context.Context, search, category string) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	LowStock(ctx context.Context, limit int) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Create(ctx context.Context, in model.ProductInput) (*model.Product, error)
	Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo repository.ProductRepo
	now  func() time.Time
}

// NewProductService construye el servicio a partir de un ProductRepo.
func NewProductService(r repository.ProductRepo) ProductService {
	return &productService{repo: r, now: time.Now}
}

// List trae los productos activos más recientes y aplica la búsqueda y la
// categoría en memoria.
func (s *productService) List(ctx context.Context, search, category string) ([]model.Product, error) {
	products, err := s.repo.List(ctx, model.ProductQuery{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return inventory.FilterProducts(products, search, category), nil
}

func (s *productService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.repo.List(ctx, model.ProductQuery{ActiveOnly: true})
	if err != nil {
		return nil, err
	}
	return inventory.Categories(products), nil
}

// LowStock devuelve los productos activos con stock <= mínimo.
func (s *productService) LowStock(ctx context.Context, limit int) ([]model.Product, error) {
	if limit < 1 {
		limit = defaultAlertLimit
	}
	if limit > maxAlertLimit {
		limit = maxAlertLimit
	}
	return s.repo.List(ctx, model.ProductQuery{ActiveOnly: true, LowStockOnly: true, Limit: limit})
}

func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting product %s: %w", id, err)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, in model.ProductInput) (*model.Product, error) {
	if in.StockQuantity == nil {
		zero := 0
		in.StockQuantity = &zero
	}
	if in.MinStockLevel == nil {
		min := defaultMinStockLevel
		in.MinStockLevel = &min
	}
	p, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, skuError(err)
	}
	return p, nil
}

// Update reemplaza el producto. Si is_active no viene en el cuerpo se conserva
// el valor guardado, para no reactivar productos al editarlos.
func (s *productService) Update(ctx context.Context, id string, in model.ProductInput) (*model.Product, error) {
	p, err := s.fromInput(in)
	if err != nil {
		return nil, err
	}
	if in.IsActive == nil {
		current, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("error updating product %s: %w", id, err)
		}
		p.IsActive = current.IsActive
	}
	p.ID = id
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("error updating product %s: %w", id, skuError(err))
	}
	return p, nil
}

// skuError traduce un SKU repetido en un error de formulario sobre el campo sku.
func skuError(err error) error {
	if errors.Is(err, repository.ErrSKUTaken) {
		return fieldError("sku", "Mã SKU đã tồn tại")
	}
	return err
}

func (s *productService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting product %s: %w", id, err)
	}
	return nil
}

// fromInput valida el formulario y lo normaliza en una fila de producto.
// Si la validación falla no se toca el almacén.
func (s *productService) fromInput(in model.ProductInput) (*model.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	p := &model.Product{
		Name:          in.Name,
		Category:      in.Category,
		Price:         *in.Price,
		StockQuantity: *in.StockQuantity,
		MinStockLevel: *in.MinStockLevel,
		IsActive:      true,
	}
	sku := in.SKU
	if sku == "" {
		sku = s.generateSKU()
	}
	p.SKU = &sku
	if in.Description != "" {
		p.Description = &in.Description
	}
	if in.CostPrice != nil && *in.CostPrice > 0 {
		cost := *in.CostPrice
		p.CostPrice = &cost
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return p, nil
}

// generateSKU genera SKU-<últimos 6 dígitos de unix millis>-<3 caracteres aleatorios>.
func (s *productService) generateSKU() string {
	ms := strconv.FormatInt(s.now().UnixMilli(), 10)
	if len(ms) > 6 {
		ms = ms[len(ms)-6:]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:3])
	return "SKU-" + ms + "-" + suffix
}
