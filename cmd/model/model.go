package model

import "time"

type Product struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	SKU           *string   `json:"sku,omitempty" db:"sku"`
	Category      string    `json:"category" db:"category"`
	Description   *string   `json:"description,omitempty" db:"description"`
	Price         float64   `json:"price" db:"price"`
	CostPrice     *float64  `json:"cost_price,omitempty" db:"cost_price"`
	StockQuantity int       `json:"stock_quantity" db:"stock_quantity"`
	MinStockLevel int       `json:"min_stock_level" db:"min_stock_level"`
	IsActive      bool      `json:"is_active" db:"is_active"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ProductInput es el cuerpo del formulario de crear/editar producto.
// Los punteros distinguen "no enviado" de cero.
type ProductInput struct {
	Name          string   `json:"name" validate:"required,max=255"`
	SKU           string   `json:"sku" validate:"max=100"`
	Category      string   `json:"category" validate:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" validate:"required,gte=0"`
	CostPrice     *float64 `json:"cost_price" validate:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity" validate:"required,gte=0"`
	MinStockLevel *int     `json:"min_stock_level" validate:"required,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type ProductQuery struct {
	ActiveOnly   bool
	Category     string
	LowStockOnly bool
	Limit        int
}

type Customer struct {
	ID           string       `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	Phone        *string      `json:"phone,omitempty" db:"phone"`
	Email        *string      `json:"email,omitempty" db:"email"`
	Address      *string      `json:"address,omitempty" db:"address"`
	CustomerType CustomerType `json:"customer_type" db:"customer_type"`
	IsActive     bool         `json:"is_active" db:"is_active"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerBusiness   CustomerType = "business"
)

// CustomerRef es la parte del cliente que se resuelve junto con un pedido.
type CustomerRef struct {
	Name string `json:"name"`
}

type Order struct {
	ID          string       `json:"id" db:"id"`
	OrderNumber string       `json:"order_number" db:"order_number"`
	Customer    *CustomerRef `json:"customer"`
	TotalAmount float64      `json:"total_amount" db:"total_amount"`
	Status      OrderStatus  `json:"status" db:"status"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
}

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// DashboardStats se calcula en cada carga del panel y nunca se persiste.
type DashboardStats struct {
	TotalRevenue     float64  `json:"totalRevenue"`
	TotalOrders      int      `json:"totalOrders"`
	TotalCustomers   int      `json:"totalCustomers"`
	LowStockProducts int      `json:"lowStockProducts"`
	RevenueChange    float64  `json:"revenueChange"`
	OrdersChange     float64  `json:"ordersChange"`
	Unavailable      []string `json:"unavailable,omitempty"`
}

type SalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}
