package middlewares

import (
	"net/http"

	"github.com/hrakoto/go-annuaire/app/helpers"
	"github.com/hrakoto/go-annuaire/app/services"
	"github.com/unrolled/render"
)

const AuthCookieName = "token"

// Authenticate extracts the signed token from the auth cookie and attaches
// the decoded claims to the request context. It never touches the store:
// tokens are self-contained.
func Authenticate(authSvc services.AuthService, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				helpers.WriteError(rnd, w, helpers.ErrUnauthorized)
				return
			}

			claims, err := authSvc.VerifyToken(cookie.Value)
			if err != nil {
				helpers.WriteError(rnd, w, helpers.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(helpers.WithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole gates a route on the caller's role. Admin passes every gate.
func RequireRole(role string, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := helpers.ClaimsFromContext(r.Context())
			if !ok {
				helpers.WriteError(rnd, w, helpers.ErrUnauthorized)
				return
			}
			if !claims.HasRole(role) {
				helpers.WriteError(rnd, w, helpers.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
