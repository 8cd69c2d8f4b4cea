package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/db"
	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/env"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := env.Start()
		conn, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		if err := db.ApplyMigrations(cmd.Context(), conn, cfg.Migrations); err != nil {
			return fmt.Errorf("error applying migrations: %w", err)
		}
		log.Println("Migrations applied successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
