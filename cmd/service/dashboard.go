package service

import (
	"context"
	"log"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/fidellopezm03/giakiemso-backend/cmd/inventory"
	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
)

type DashboardService interface {
	Stats(ctx context.Context) (model.DashboardStats, error)
	Sales(ctx context.Context, days int) ([]model.SalesPoint, error)
}

type dashboardService struct {
	orders    repository.OrderRepo
	customers repository.CustomerRepo
	products  repository.ProductRepo
	now       func() time.Time
}

func NewDashboardService(o repository.OrderRepo, c repository.CustomerRepo, p repository.ProductRepo) DashboardService {
	return &dashboardService{orders: o, customers: c, products: p, now: time.Now}
}

// Stats lanza las tres consultas a la vez y espera a todas; si alguna falla
// sólo ese campo queda en cero.
func (s *dashboardService) Stats(ctx context.Context) (model.DashboardStats, error) {
	var src inventory.Sources
	var wg conc.WaitGroup

	wg.Go(func() {
		src.Orders, src.OrdersErr = s.orders.ListForStats(ctx)
	})
	wg.Go(func() {
		src.ActiveCustomers, src.CustomersErr = s.customers.CountActive(ctx)
	})
	wg.Go(func() {
		src.LowStockProducts, src.LowStockErr = s.products.CountLowStock(ctx)
	})
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return model.DashboardStats{}, err
	}
	logSourceErr(inventory.SourceOrders, src.OrdersErr)
	logSourceErr(inventory.SourceCustomers, src.CustomersErr)
	logSourceErr(inventory.SourceLowStock, src.LowStockErr)

	return inventory.Aggregate(src, s.now()), nil
}

func logSourceErr(source string, err error) {
	if err != nil {
		log.Printf("dashboard: %s query failed: %v", source, err)
	}
}

func (s *dashboardService) Sales(ctx context.Context, days int) ([]model.SalesPoint, error) {
	orders, err := s.orders.ListForStats(ctx)
	if err != nil {
		return nil, err
	}
	return inventory.DailyRevenue(orders, s.now(), days), nil
}
