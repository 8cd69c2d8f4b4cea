package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/db"
	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/env"
)

var rootCmd = &cobra.Command{
	Use:   "giakiemso",
	Short: "Gia Kiệm Số - inventory and sales backend",
	Long: `Backend for the Gia Kiệm Số shop: products, stock alerts, recent
orders and the sales dashboard.

Run without a subcommand to start the HTTP server.`,
	RunE: runServer,
}

// Execute ejecuta el comando raíz
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openDB(cfg *env.Env) (*sql.DB, error) {
	return db.Open(db.DBConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPass,
		Name:     cfg.DBName,
		SSLMode:  cfg.SSLMode,
	})
}
