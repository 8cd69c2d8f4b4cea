package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
	"github.com/fidellopezm03/giakiemso-backend/cmd/view"
)

// renderError traduce los errores de servicio al código HTTP correspondiente.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, map[string]any{"error": "Dữ liệu không hợp lệ", "fields": verr.Fields})
	case errors.Is(err, service.ErrPasswordTooShort):
		renderFieldError(w, r, "password", err)
	case errors.Is(err, service.ErrPasswordMismatch):
		renderFieldError(w, r, "confirm_password", err)
	case errors.Is(err, service.ErrInvalidCredentials):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidResetToken):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, map[string]string{"error": "not found"})
	case errors.Is(err, repository.ErrEmailTaken):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, map[string]string{"error": err.Error()})
	default:
		log.Printf("error: %v", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, map[string]any{"error": err.Error(), "retryable": true})
	}
}

func renderFieldError(w http.ResponseWriter, r *http.Request, field string, err error) {
	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, map[string]any{"error": err.Error(), "fields": map[string]string{field: err.Error()}})
}

// renderState escribe el resultado de view.Load. Si el cliente ya se fue
// (ok == false) no se escribe nada.
func renderState[T any](w http.ResponseWriter, r *http.Request, st view.State[T], ok bool) {
	if !ok {
		log.Printf("request %s %s cancelled, dropping result", r.Method, r.URL.Path)
		return
	}
	if st.Status == view.Failed {
		renderError(w, r, st.Err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, st.Data)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, map[string]string{"error": "Invalid request body"})
		return false
	}
	return true
}

func queryInt(r *http.Request, name string) int {
	n, _ := strconv.Atoi(r.URL.Query().Get(name))
	return n
}
