package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-chi/jwtauth"
	"golang.org/x/crypto/bcrypt"

	"github.com/fidellopezm03/giakiemso-backend/cmd/internal/mail"
	"github.com/fidellopezm03/giakiemso-backend/cmd/middleware"
	"github.com/fidellopezm03/giakiemso-backend/cmd/model"
	"github.com/fidellopezm03/giakiemso-backend/cmd/repository"
)

const (
	tokenTypeReset  = "reset_password"
	resetTokenTTL   = 15 * time.Minute
	minPasswordSize = 6
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password, confirm string) error
	UpdatePassword(ctx context.Context, userID, password, confirm string) error
	Me(ctx context.Context, userID string) (*model.User, error)
	CreateUser(ctx context.Context, email, name, password string) (*model.User, error)
	TokenTTL() time.Duration
}

type AuthConfig struct {
	Tokens     *jwtauth.JWTAuth
	TokenTTL   time.Duration
	Mailer     mail.Sender
	BcryptCost int
}

type authService struct {
	users repository.UserRepo
	cfg   AuthConfig
}

func NewAuthService(users repository.UserRepo, cfg AuthConfig) AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &authService{users: users, cfg: cfg}
}

func (s *authService) TokenTTL() time.Duration { return s.cfg.TokenTTL }

// Login devuelve el mismo error para correo desconocido y contraseña errónea.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	in := struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}{strings.TrimSpace(email), password}
	if err := validateStruct(in); err != nil {
		return "", nil, err
	}

	user, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	_, token, err := s.cfg.Tokens.Encode(map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
		"type":    middleware.TokenTypeSession,
		"exp":     jwtauth.ExpireIn(s.cfg.TokenTTL),
	})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ForgotPassword no revela si el correo existe.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	_, token, err := s.cfg.Tokens.Encode(map[string]interface{}{
		"user_id": user.ID,
		"type":    tokenTypeReset,
		"exp":     jwtauth.ExpireIn(resetTokenTTL),
	})
	if err != nil {
		return err
	}
	if err := s.cfg.Mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		log.Printf("CRITICAL: failed to send password reset email to %s: %v", user.Email, err)
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, token, password, confirm string) error {
	if err := checkPassword(password, confirm); err != nil {
		return err
	}
	tok, err := jwtauth.VerifyToken(s.cfg.Tokens, token)
	if err != nil {
		return ErrInvalidResetToken
	}
	claims, err := tok.AsMap(ctx)
	if err != nil {
		return ErrInvalidResetToken
	}
	if typ, _ := claims["type"].(string); typ != tokenTypeReset {
		return ErrInvalidResetToken
	}
	userID, _ := claims["user_id"].(string)
	if err := s.setPassword(ctx, userID, password); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	return nil
}

// UpdatePassword cambia la contraseña del usuario de la sesión actual.
func (s *authService) UpdatePassword(ctx context.Context, userID, password, confirm string) error {
	if err := checkPassword(password, confirm); err != nil {
		return err
	}
	return s.setPassword(ctx, userID, password)
}

func (s *authService) Me(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *authService) CreateUser(ctx context.Context, email, name, password string) (*model.User, error) {
	in := struct {
		Email string `json:"email" validate:"required,email"`
	}{strings.TrimSpace(email)}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if err := checkPassword(password, password); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{Email: in.Email, Name: strings.TrimSpace(name), PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) setPassword(ctx context.Context, userID, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}

func checkPassword(password, confirm string) error {
	if len([]rune(password)) < minPasswordSize {
		return ErrPasswordTooShort
	}
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}
