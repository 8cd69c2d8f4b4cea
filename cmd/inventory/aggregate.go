package inventory

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
)

const (
	SourceOrders    = "orders"
	SourceCustomers = "customers"
	SourceLowStock  = "low_stock"

	statsPeriod = 30 * 24 * time.Hour

	defaultSalesDays = 7
	maxSalesDays     = 90
)

// Sources reúne lo que devolvieron las consultas del panel. Un error no nil
// marca esa fuente como fallida y su valor se ignora.
type Sources struct {
	Orders    []model.Order
	OrdersErr error

	ActiveCustomers int
	CustomersErr    error

	LowStockProducts int
	LowStockErr      error
}

// Aggregate construye los contadores del panel. Una fuente fallida sólo deja
// en cero sus propios campos y se informa en Unavailable.
func Aggregate(src Sources, now time.Time) model.DashboardStats {
	var stats model.DashboardStats

	if src.OrdersErr == nil {
		stats.TotalRevenue = deliveredRevenue(src.Orders).InexactFloat64()
		stats.TotalOrders = len(src.Orders)
		stats.RevenueChange, stats.OrdersChange = periodChanges(src.Orders, now)
	} else {
		stats.Unavailable = append(stats.Unavailable, SourceOrders)
	}

	if src.CustomersErr == nil {
		stats.TotalCustomers = src.ActiveCustomers
	} else {
		stats.Unavailable = append(stats.Unavailable, SourceCustomers)
	}

	if src.LowStockErr == nil {
		stats.LowStockProducts = src.LowStockProducts
	} else {
		stats.Unavailable = append(stats.Unavailable, SourceLowStock)
	}

	return stats
}

func deliveredRevenue(orders []model.Order) decimal.Decimal {
	sum := decimal.Zero
	for _, o := range orders {
		if o.Status == model.OrderDelivered {
			sum = sum.Add(decimal.NewFromFloat(o.TotalAmount))
		}
	}
	return sum
}

func periodChanges(orders []model.Order, now time.Time) (revenue, count float64) {
	curStart := now.Add(-statsPeriod)
	prevStart := curStart.Add(-statsPeriod)

	var cur, prev []model.Order
	for _, o := range orders {
		switch {
		case o.CreatedAt.After(curStart) && !o.CreatedAt.After(now):
			cur = append(cur, o)
		case o.CreatedAt.After(prevStart) && !o.CreatedAt.After(curStart):
			prev = append(prev, o)
		}
	}

	curRev, _ := deliveredRevenue(cur).Float64()
	prevRev, _ := deliveredRevenue(prev).Float64()
	return percentChange(curRev, prevRev), percentChange(float64(len(cur)), float64(len(prev)))
}

// percentChange redondea a un decimal. Sin valor previo cualquier crecimiento
// cuenta como 100%.
func percentChange(cur, prev float64) float64 {
	if prev == 0 {
		if cur > 0 {
			return 100
		}
		return 0
	}
	return math.Round((cur-prev)/prev*1000) / 10
}

// DailyRevenue devuelve los ingresos entregados por día UTC de los últimos
// days días, del más antiguo al más reciente, hoy incluido.
func DailyRevenue(orders []model.Order, now time.Time, days int) []model.SalesPoint {
	if days < 1 {
		days = defaultSalesDays
	}
	if days > maxSalesDays {
		days = maxSalesDays
	}

	today := now.UTC().Truncate(24 * time.Hour)
	first := today.AddDate(0, 0, -(days - 1))

	sums := make([]decimal.Decimal, days)
	for _, o := range orders {
		if o.Status != model.OrderDelivered {
			continue
		}
		day := o.CreatedAt.UTC().Truncate(24 * time.Hour)
		if day.Before(first) || day.After(today) {
			continue
		}
		i := int(day.Sub(first) / (24 * time.Hour))
		sums[i] = sums[i].Add(decimal.NewFromFloat(o.TotalAmount))
	}

	points := make([]model.SalesPoint, days)
	for i := range points {
		points[i] = model.SalesPoint{
			Date:    first.AddDate(0, 0, i).Format("2006-01-02"),
			Revenue: sums[i].InexactFloat64(),
		}
	}
	return points
}
