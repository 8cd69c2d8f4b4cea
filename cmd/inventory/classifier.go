// Package inventory reúne las reglas de stock e ingresos que comparten la
// lista de productos, las alertas de stock bajo y el panel.
package inventory

import (
	"encoding/json"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

type StockLevel int

const (
	InStock StockLevel = iota
	NeedsRestock
	Low
	CriticallyLow
	OutOfStock
)

var stockLevelNames = [...]string{
	InStock:       "In stock",
	NeedsRestock:  "Needs restock",
	Low:           "Low",
	CriticallyLow: "Critically low",
	OutOfStock:    "Out of stock",
}

var stockLevelLabels = [...]string{
	InStock:       "Còn hàng",
	NeedsRestock:  "Cần nhập thêm",
	Low:           "Thấp",
	CriticallyLow: "Rất thấp",
	OutOfStock:    "Hết hàng",
}

// Classify asigna un nivel a una cantidad en stock y su mínimo. Los niveles
// se evalúan del más grave al más leve y gana el primero que cumple.
//
// Los umbrales 0.3 y 0.6 se comparan en enteros (current <= floor(min*3/10))
// para que los límites sean exactos y no haya desbordamiento.
func Classify(current, min int) StockLevel {
	if current < 0 {
		current = 0
	}
	if min < 0 {
		min = 0
	}
	switch {
	case current == 0:
		return OutOfStock
	case current > min:
		return InStock
	case current <= tenths(min, 3):
		return CriticallyLow
	case current <= tenths(min, 6):
		return Low
	default:
		return NeedsRestock
	}
}

// tenths devuelve floor(n*k/10) sin calcular n*k.
func tenths(n, k int) int {
	return k*(n/10) + k*(n%10)/10
}

// IsLowStock indica stock_quantity <= min_stock_level.
func IsLowStock(p model.Product) bool {
	return p.StockQuantity <= p.MinStockLevel
}

func (l StockLevel) String() string {
	if l < InStock || l > OutOfStock {
		return "unknown"
	}
	return stockLevelNames[l]
}

// Label es el texto en vietnamita de la insignia.
func (l StockLevel) Label() string {
	if l < InStock || l > OutOfStock {
		return ""
	}
	return stockLevelLabels[l]
}

// Severity va de 0 (en stock) a 4 (agotado).
func (l StockLevel) Severity() int { return int(l) }

func (l StockLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// StockStatus es el JSON que acompaña a cada producto.
type StockStatus struct {
	Level    StockLevel `json:"level"`
	Label    string     `json:"label"`
	Severity int        `json:"severity"`
}

func StatusOf(p model.Product) StockStatus {
	l := Classify(p.StockQuantity, p.MinStockLevel)
	return StockStatus{Level: l, Label: l.Label(), Severity: l.Severity()}
}
