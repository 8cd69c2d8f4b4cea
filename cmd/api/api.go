package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 20 * time.Second

type Api struct {
	config *Config
}

type Config struct {
	addr string
}

func NewApi(addr string) *Api {
	return &Api{
		config: &Config{
			addr: addr,
		},
	}
}

// Routes agrupa lo que se monta bajo /api.
type Routes struct {
	Public        []func(chi.Router)
	Authenticated []func(chi.Router)
	Authn         func(http.Handler) http.Handler
	Middlewares   []func(http.Handler) http.Handler
}

// NewRouter arma el router con el middleware común y el health check.
func NewRouter(routes Routes) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.StripSlashes)
	r.Use(routes.Middlewares...)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			render.JSON(w, r, map[string]string{"status": "ok"})
		})
		for _, mount := range routes.Public {
			mount(r)
		}
		r.Group(func(r chi.Router) {
			if routes.Authn != nil {
				r.Use(routes.Authn)
			}
			for _, mount := range routes.Authenticated {
				mount(r)
			}
		})
	})
	return r
}

// Run sirve hasta recibir SIGINT/SIGTERM o hasta que ctx termine, y luego
// espera a las peticiones pendientes.
func (a *Api) Run(ctx context.Context, h http.Handler) error {
	server := &http.Server{
		Addr:              a.config.addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(shutdownCtx)
	g.Go(func() error {
		log.Printf("server listening on %s", a.config.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Println("server is shutting down, waiting for pending requests...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("server failed to shutdown gracefully: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("server has been gracefully shutdown")
	return nil
}
