package middleware

import (
	"net/http"
	"time"

	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

// Session loads (or starts) the server-side session behind the client cookie
// and puts an immutable snapshot of it on the request context. Every route
// runs behind this, authenticated or not; theme and flashes belong to
// anonymous sessions too.
func Session(sessions usecase.SessionService, config utils.SessionConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookieID string
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				cookieID = cookie.Value
			}

			session, err := sessions.GetOrCreate(r.Context(), cookieID)
			if err != nil {
				logger.Error("Failed to load session",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			// fresh or replaced session gets a new cookie
			if session.ID != cookieID {
				http.SetCookie(w, &http.Cookie{
					Name:     config.CookieName,
					Value:    session.ID,
					Path:     "/",
					Expires:  time.Now().Add(time.Duration(config.ExpiryHours) * time.Hour),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := utils.SetSessionContext(r.Context(), session.ID, session.Theme)
			if session.Authenticated() {
				ctx = utils.SetIdentityContext(ctx, utils.Identity{
					UserID: session.UserID,
					Email:  session.Email,
					Name:   session.Name,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
