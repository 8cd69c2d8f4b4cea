package cli

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/spf13/cobra"

	"github.com/fidellopezm03/giakiemso-backend/cmd/api"
	"github.com/fidellopezm03/giakiemso-backend/cmd/handler"
	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/db"
	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/env"
	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/mail"
	"github.com/fidellopezm03/giakiemso-backend/cmd/middleware"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
)

var skipMigrations bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	// El comando raíz sin subcomando también arranca el servidor.
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply the schema before serving")
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	log.Println("Starting server...")
	cfg := env.Start()

	conn, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if !skipMigrations {
		if err := db.ApplyMigrations(cmd.Context(), conn, cfg.Migrations); err != nil {
			return fmt.Errorf("error applying migrations: %w", err)
		}
		log.Println("Migrations applied successfully")
	}

	return api.NewApi(cfg.Addr).Run(cmd.Context(), newRouter(cfg, conn, middleware.NewRedisCounter(cfg.RedisAddr)))
}

// newRouter conecta repositorios, servicios y handlers sobre una sola
// conexión y una sola autoridad JWT.
func newRouter(cfg *env.Env, conn *sql.DB, counter middleware.Counter) http.Handler {
	tokens := jwtauth.New("HS256", []byte(cfg.SecretKey), nil)

	productRepo := repository.NewProductRepo(conn)
	orderRepo := repository.NewOrderRepo(conn)
	customerRepo := repository.NewCustomerRepo(conn)
	userRepo := repository.NewUserRepo(conn)

	productHandler := handler.NewProductHandler(service.NewProductService(productRepo))
	orderHandler := handler.NewOrderHandler(service.NewOrderService(orderRepo))
	dashboardHandler := handler.NewDashboardHandler(service.NewDashboardService(orderRepo, customerRepo, productRepo))
	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, service.AuthConfig{
		Tokens:   tokens,
		TokenTTL: cfg.TokenTTL,
		Mailer:   mail.NewLogSender(cfg.ResetURL),
	}))

	authn := middleware.Authenticate(tokens)
	limit := middleware.RateLimiter(counter, cfg.RateLimit, time.Minute)

	return api.NewRouter(api.Routes{
		Middlewares: []func(http.Handler) http.Handler{
			middleware.RecoverPanic(),
			middleware.CORSmiddleware(cfg),
		},
		Public: []func(chi.Router){
			func(r chi.Router) { authHandler.RegisterRoutes(r, limit, authn) },
		},
		Authn: authn,
		Authenticated: []func(chi.Router){
			productHandler.RegisterRoutes,
			orderHandler.RegisterRoutes,
			dashboardHandler.RegisterRoutes,
		},
	})
}
