package wire

import (
	"movie-watchlist/internal/adaptor"
	"movie-watchlist/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	log *zap.Logger,
) {
	// ==================== ANONYMOUS-ONLY ROUTES ====================
	// Logged-in users are bounced back to their watchlist
	r.Group(func(r chi.Router) {
		r.Use(middleware.AnonOnly())

		r.Get("/register", authHandler.ShowRegister)
		r.Post("/register", authHandler.Register)
		r.Get("/login", authHandler.ShowLogin)
		r.Post("/login", authHandler.Login)
	})

	// Confirmation links work whether or not anyone is logged in
	r.Get("/confirm_email/{token}", authHandler.ConfirmEmail)

	// Logout is harmless for anonymous sessions too
	r.Get("/logout", authHandler.Logout)
}
