package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/fidellopezm03/giakiemso-backend/cmd/middleware"
	"github.com/fidellopezm03/giakiemso-backend/cmd/service"
)

const (
	cookieName          = "jwt"
	forgotPasswordReply = "Nếu email tồn tại, chúng tôi đã gửi liên kết đặt lại mật khẩu"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

// RegisterRoutes monta /auth. limit se aplica a las rutas públicas y authn a
// las que requieren sesión.
func (h *AuthHandler) RegisterRoutes(r chi.Router, limit, authn func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limit)
			r.Post("/login", h.login)
			r.Post("/forgot-password", h.forgotPassword)
			r.Post("/reset-password", h.resetPassword)
		})
		r.Post("/logout", h.logout)

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Get("/me", h.me)
			r.Post("/update-password", h.updatePassword)
		})
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	token, user, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		renderError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.svc.TokenTTL()),
	})
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]any{"message": "Login successful", "token": token, "user": user})
}

func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": "Logout successful"})
}

// forgotPassword contesta siempre lo mismo para no filtrar qué correos existen.
func (h *AuthHandler) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": forgotPasswordReply})
}

func (h *AuthHandler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token           string `json:"token"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.ResetPassword(r.Context(), req.Token, req.Password, req.ConfirmPassword); err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": "Password changed successfully"})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	sess, _ := middleware.SessionFrom(r.Context())
	user, err := h.svc.Me(r.Context(), sess.UserID)
	if err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, user)
}

func (h *AuthHandler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	sess, _ := middleware.SessionFrom(r.Context())
	if err := h.svc.UpdatePassword(r.Context(), sess.UserID, req.Password, req.ConfirmPassword); err != nil {
		renderError(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"message": "Password changed successfully"})
}
