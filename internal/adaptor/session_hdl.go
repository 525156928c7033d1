package adaptor

import (
	"net/http"

	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	sessions usecase.SessionService
	log      *zap.Logger
}

func NewSessionHandler(sessions usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		log:      log.With(zap.String("handler", "session")),
	}
}

// ToggleTheme handles GET /toggle-theme?current_page=P: flips the session
// theme and sends the user back where they came from.
func (h *SessionHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	theme, err := h.sessions.ToggleTheme(r.Context(), sessionID)
	if err != nil {
		h.log.Error("Failed to toggle theme", zap.Error(err), zap.String("session_id", sessionID))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.log.Debug("Theme toggled",
		zap.String("session_id", sessionID),
		zap.String("theme", theme))

	currentPage := r.URL.Query().Get("current_page")
	if currentPage == "" {
		currentPage = "/"
	}

	http.Redirect(w, r, currentPage, http.StatusFound)
}
