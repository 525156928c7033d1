package wire

import (
	"fmt"

	"movie-watchlist/internal/adaptor"
	"movie-watchlist/internal/captcha"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/mail"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/internal/view"
	"movie-watchlist/pkg/middleware"
	"movie-watchlist/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependency graph
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	mailer := mail.NewMailer(config.Email, logger)
	verifier := captcha.NewRecaptcha(config.Recaptcha, logger)

	service := usecase.NewService(repo, config, mailer, verifier, logger)

	renderer, err := view.NewTemplateRenderer(logger)
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	handler := adaptor.NewHandler(service, renderer, config, logger)

	router := setupRouter(handler, service, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware: every route runs inside a session
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Session(service.Session, config.Session, logger))

	wireAuth(r, handler.Auth, logger)
	wireMovie(r, handler.Movie, logger)

	// Theme toggle works for anonymous and authenticated sessions alike
	r.Get("/toggle-theme", handler.Session.ToggleTheme)

	// Embedded assets
	r.Handle("/static/*", view.StaticHandler())

	return r
}
