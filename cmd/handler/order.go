package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
	"github.com/fidellopezm03/giakiemso-backend/cmd/view"
)

type OrderHandler struct {
	svc service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{svc: s}
}

func (h *OrderHandler) RegisterRoutes(r chi.Router) {
	r.Get("/orders", h.getRecent) // GET /orders?status=&limit=
}

// OrderResponse añade la etiqueta legible del estado.
type OrderResponse struct {
	model.Order
	StatusLabel string `json:"status_label"`
}

func (h *OrderHandler) getRecent(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit := queryInt(r, "limit")
	st, ok := view.Load(r.Context(), func(ctx context.Context) ([]OrderResponse, error) {
		orders, err := h.svc.Recent(ctx, status, limit)
		if err != nil {
			return nil, err
		}
		out := make([]OrderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, OrderResponse{Order: o, StatusLabel: o.Status.Label()})
		}
		return out, nil
	})
	renderState(w, r, st, ok)
}
