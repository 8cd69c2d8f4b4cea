package service

import (
	"context"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
)

const (
	defaultOrderLimit = 10
	maxOrderLimit     = 100
)

type OrderService interface {
	Recent(ctx context.Context, status string, limit int) ([]model.Order, error)
}

type orderService struct {
	repo repository.OrderRepo
}

func NewOrderService(r repository.OrderRepo) OrderService {
	return &orderService{repo: r}
}

// Recent lista los pedidos más nuevos, opcionalmente de un solo estado.
func (s *orderService) Recent(ctx context.Context, status string, limit int) ([]model.Order, error) {
	if limit < 1 {
		limit = defaultOrderLimit
	}
	if limit > maxOrderLimit {
		limit = maxOrderLimit
	}
	var filter *model.OrderStatus
	if status != "" && status != "all" {
		st, err := model.ParseOrderStatus(status)
		if err != nil {
			return nil, fieldError("status", err.Error())
		}
		filter = &st
	}
	return s.repo.ListRecent(ctx, filter, limit)
}
