package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/fidellopezm03/giakiemso-backend/cmd/inventory"
	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
	"github.com/fidellopezm03/giakiemso-backend/cmd/view"
)

// ProductHandler expone los endpoints HTTP relacionados con productos.
type ProductHandler struct {
	svc service.ProductService
}

// NewProductHandler inicializa el handler con el servicio.
func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{svc: s}
}

// RegisterRoutes monta todas las rutas en el router pasado.
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.getAll)
		r.Get("/categories", h.getCategories)
		r.Get("/low-stock", h.getLowStock)
		r.Get("/{id}", h.getByID)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})
}

// ProductResponse es el producto con los datos derivados que pinta la UI.
type ProductResponse struct {
	model.Product
	StockStatus  inventory.StockStatus `json:"stock_status"`
	Profit       *float64              `json:"profit,omitempty"`
	ProfitMargin *float64              `json:"profit_margin,omitempty"`
}

func newProductResponse(p model.Product) ProductResponse {
	out := ProductResponse{Product: p, StockStatus: inventory.StatusOf(p)}
	if profit, margin, ok := inventory.Profit(p); ok {
		out.Profit, out.ProfitMargin = &profit, &margin
	}
	return out
}

func newProductResponses(products []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

// --- GET /products?q=&category= ---
func (h *ProductHandler) getAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st, ok := view.Load(r.Context(), func(ctx context.Context) ([]ProductResponse, error) {
		products, err := h.svc.List(ctx, q.Get("q"), q.Get("category"))
		if err != nil {
			return nil, err
		}
		return newProductResponses(products), nil
	})
	renderState(w, r, st, ok)
}

func (h *ProductHandler) getCategories(w http.ResponseWriter, r *http.Request) {
	st, ok := view.Load(r.Context(), h.svc.Categories)
	renderState(w, r, st, ok)
}

// --- GET /products/low-stock?limit= ---
func (h *ProductHandler) getLowStock(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit")
	st, ok := view.Load(r.Context(), func(ctx context.Context) ([]ProductResponse, error) {
		products, err := h.svc.LowStock(ctx, limit)
		if err != nil {
			return nil, err
		}
		return newProductResponses(products), nil
	})
	renderState(w, r, st, ok)
}

func (h *ProductHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	st, ok := view.Load(r.Context(), func(ctx context.Context) (ProductResponse, error) {
		p, err := h.svc.GetByID(ctx, id)
		if err != nil {
			return ProductResponse{}, err
		}
		return newProductResponse(*p), nil
	})
	renderState(w, r, st, ok)
}

func (h *ProductHandler) create(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if !decodeBody(w, r, &in) {
		return
	}
	p, err := h.svc.Create(r.Context(), in)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, newProductResponse(*p))
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var in model.ProductInput
	if !decodeBody(w, r, &in) {
		return
	}
	p, err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, newProductResponse(*p))
}

func (h *ProductHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": "Product deleted"})
}
