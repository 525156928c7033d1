package middleware

import (
	"net/http"

	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

// RequireAuth gates protected routes: without an authenticated identity on
// the context the request is redirected to the login page.
func RequireAuth(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
				logger.Debug("Unauthenticated request redirected to login",
					zap.String("path", r.URL.Path))
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AnonOnly keeps logged-in users away from the register and login pages.
func AnonOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := utils.GetIdentityFromContext(r.Context()); ok {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
