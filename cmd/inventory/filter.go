package inventory

import (
	"strings"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

// AllCategories es el valor del selector que desactiva el filtro por categoría.
const AllCategories = "all"

// FilterProducts conserva los productos cuyo nombre o sku contiene query (sin
// distinguir mayúsculas) y cuya categoría coincide, salvo que category sea
// "all" o vacía. Se respeta el orden de entrada.
func FilterProducts(products []model.Product, query, category string) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !matchesQuery(p, q) {
			continue
		}
		if category != "" && category != AllCategories && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p model.Product, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	return p.SKU != nil && strings.Contains(strings.ToLower(*p.SKU), q)
}

// Categories devuelve las categorías distintas en el orden en que aparecen.
func Categories(products []model.Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := []string{}
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Profit devuelve price - cost_price y el margen sobre price en porcentaje.
// ok es false si el producto no tiene precio de coste. Puede ser negativo.
func Profit(p model.Product) (profit, margin float64, ok bool) {
	if p.CostPrice == nil {
		return 0, 0, false
	}
	profit = p.Price - *p.CostPrice
	if p.Price > 0 {
		margin = profit / p.Price * 100
	}
	return profit, margin, true
}
