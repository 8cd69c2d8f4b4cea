package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/go-chi/render"
)

// TokenTypeSession marca los tokens de inicio de sesión, frente a los de
// restablecimiento de contraseña.
const TokenTypeSession = "session"

type Session struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type sessionKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// Authenticate verifica el JWT (cookie o cabecera Authorization) y deja la
// sesión en el contexto de la petición.
func Authenticate(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	verify := jwtauth.Verify(ja, jwtauth.TokenFromCookie, jwtauth.TokenFromHeader)
	return func(next http.Handler) http.Handler {
		return verify(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				unauthorized(w, r)
				return
			}
			if typ, _ := claims["type"].(string); typ != TokenTypeSession {
				unauthorized(w, r)
				return
			}
			userID, _ := claims["user_id"].(string)
			if userID == "" {
				unauthorized(w, r)
				return
			}
			email, _ := claims["email"].(string)

			ctx := WithSession(r.Context(), Session{UserID: userID, Email: email})
			next.ServeHTTP(w, r.WithContext(ctx))
		}))
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, map[string]string{"error": "unauthorized"})
}
