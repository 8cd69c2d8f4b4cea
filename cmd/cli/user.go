package cli

import (
	"fmt"

	"github.com/go-chi/jwtauth"
	"github.com/spf13/cobra"

	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/env"
	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/mail"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
)

var (
	userEmail    string
	userName     string
	userPassword string
)

// No hay registro público: las cuentas se crean desde aquí.
var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a staff account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := env.Start()
		conn, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		svc := service.NewAuthService(repository.NewUserRepo(conn), service.AuthConfig{
			Tokens:   jwtauth.New("HS256", []byte(cfg.SecretKey), nil),
			TokenTTL: cfg.TokenTTL,
			Mailer:   mail.NewLogSender(cfg.ResetURL),
		})
		user, err := svc.CreateUser(cmd.Context(), userEmail, userName, userPassword)
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", user.Email, user.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createUserCmd)
	createUserCmd.Flags().StringVar(&userEmail, "email", "", "Login email")
	createUserCmd.Flags().StringVar(&userName, "name", "", "Display name")
	createUserCmd.Flags().StringVar(&userPassword, "password", "", "Initial password (min 6 characters)")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")
}
