package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
	"github.com/fidellopezm03/giakiemso-backend/cmd/view"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(s service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: s}
}

func (h *DashboardHandler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.getStats)
		r.Get("/sales", h.getSales) // GET /dashboard/sales?days=
	})
}

// getStats responde 200 aunque falle alguna fuente; los campos afectados
// quedan en cero y se listan en "unavailable".
func (h *DashboardHandler) getStats(w http.ResponseWriter, r *http.Request) {
	st, ok := view.Load(r.Context(), h.svc.Stats)
	renderState(w, r, st, ok)
}

func (h *DashboardHandler) getSales(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days")
	st, ok := view.Load(r.Context(), func(ctx context.Context) ([]model.SalesPoint, error) {
		return h.svc.Sales(ctx, days)
	})
	renderState(w, r, st, ok)
}
