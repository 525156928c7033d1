package wire

import (
	"movie-watchlist/internal/adaptor"
	"movie-watchlist/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// All movie routes require an authenticated session. Ownership is not
	// checked beyond that: any logged-in user can act on any movie id.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(log))

		r.Get("/", movieHandler.Index)
		r.Get("/add", movieHandler.ShowAdd)
		r.Post("/add", movieHandler.Add)
		r.Get("/movie/{id}", movieHandler.Detail)
		r.Get("/edit/{id}", movieHandler.ShowEdit)
		r.Post("/edit/{id}", movieHandler.Edit)
		r.Get("/movie/{id}/rate", movieHandler.Rate)
		r.Get("/movie/{id}/watch", movieHandler.Watch)
	})
}
