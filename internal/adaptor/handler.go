package adaptor

import (
	"net/http"
	"time"

	"movie-watchlist/internal/usecase"
	"movie-watchlist/internal/view"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Movie   *MovieHandler
	Session *SessionHandler
}

func NewHandler(service *usecase.Service, renderer view.Renderer, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, service.Session, renderer, config, log),
		Movie:   NewMovieHandler(service.Movie, service.Session, renderer, log),
		Session: NewSessionHandler(service.Session, log),
	}
}

// buildPage assembles the common page data from the request context: theme,
// identity snapshot, and any pending flash messages (drained here).
func buildPage(r *http.Request, sessions usecase.SessionService, log *zap.Logger, title string) *view.PageData {
	ctx := r.Context()

	data := &view.PageData{
		Title:       title,
		Theme:       utils.GetThemeFromContext(ctx),
		Year:        time.Now().Year(),
		CurrentPath: r.URL.Path,
	}

	if identity, ok := utils.GetIdentityFromContext(ctx); ok {
		data.LoggedIn = true
		data.UserName = identity.Name
	}

	if sessionID, ok := utils.GetSessionIDFromContext(ctx); ok {
		flashes, err := sessions.PopFlashes(ctx, sessionID)
		if err != nil {
			log.Warn("Failed to pop flashes", zap.Error(err), zap.String("session_id", sessionID))
		}
		data.Flashes = flashes
	}

	return data
}

// flash queues a transient message for the next rendered page
func flash(r *http.Request, sessions usecase.SessionService, message, category string) {
	if sessionID, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		_ = sessions.Flash(r.Context(), sessionID, message, category)
	}
}
