package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/env"
)

// RecoverPanic convierte un panic en un 500 JSON y deja la traza en el log.
func RecoverPanic() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("[%s] panic recovered on %s %s: %v\n%s",
					chimiddleware.GetReqID(r.Context()), r.Method, r.URL.Path, rec, debug.Stack())
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"error": "internal server error"})
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// CORSmiddleware admite una o varias URLs de cliente separadas por coma en
// ADDR_CLIENT. Las credenciales se permiten porque la sesión viaja en cookie.
func CORSmiddleware(env *env.Env) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(env.AddrClient),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

func allowedOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, strings.TrimRight(o, "/"))
		}
	}
	return out
}
