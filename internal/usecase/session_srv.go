package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type SessionService interface {
	GetOrCreate(ctx context.Context, sessionID string) (*entity.Session, error)
	SetIdentity(ctx context.Context, sessionID string, user *entity.User) error
	ClearIdentity(ctx context.Context, sessionID string) error
	ToggleTheme(ctx context.Context, sessionID string) (string, error)
	Flash(ctx context.Context, sessionID, message, category string) error
	PopFlashes(ctx context.Context, sessionID string) ([]entity.Flash, error)
}

type sessionService struct {
	sessions repository.SessionRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewSessionService(sessions repository.SessionRepository, config *utils.Config, log *zap.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		config:   config,
		log:      log,
	}
}

// GetOrCreate loads the valid session behind the cookie id, or starts a new
// anonymous one when the id is empty, unknown, or expired.
func (s *sessionService) GetOrCreate(ctx context.Context, sessionID string) (*entity.Session, error) {
	if sessionID != "" {
		session, err := s.sessions.FindValidSession(ctx, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		if session != nil {
			return session, nil
		}
	}

	session := &entity.Session{
		ID:        utils.GenerateID(),
		Theme:     "light",
		Flashes:   []entity.Flash{},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Debug("Anonymous session created", zap.String("session_id", session.ID))

	return session, nil
}

func (s *sessionService) SetIdentity(ctx context.Context, sessionID string, user *entity.User) error {
	if err := s.sessions.SetIdentity(ctx, sessionID, user.ID, user.Email, user.Name); err != nil {
		s.log.Error("Failed to set session identity",
			zap.Error(err),
			zap.String("session_id", sessionID),
			zap.String("user_id", user.ID))
		return fmt.Errorf("failed to establish session: %w", err)
	}

	return nil
}

// ClearIdentity logs the session out. The theme preference survives.
func (s *sessionService) ClearIdentity(ctx context.Context, sessionID string) error {
	if err := s.sessions.ClearIdentity(ctx, sessionID); err != nil {
		s.log.Error("Failed to clear session identity",
			zap.Error(err),
			zap.String("session_id", sessionID))
		return fmt.Errorf("failed to log out: %w", err)
	}

	return nil
}

func (s *sessionService) ToggleTheme(ctx context.Context, sessionID string) (string, error) {
	session, err := s.sessions.FindValidSession(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return "", repository.ErrNotFound
	}

	theme := "dark"
	if session.Theme == "dark" {
		theme = "light"
	}

	if err := s.sessions.SetTheme(ctx, sessionID, theme); err != nil {
		return "", fmt.Errorf("failed to toggle theme: %w", err)
	}

	return theme, nil
}

func (s *sessionService) Flash(ctx context.Context, sessionID, message, category string) error {
	flash := entity.Flash{Message: message, Category: category}
	if err := s.sessions.PushFlash(ctx, sessionID, flash); err != nil {
		// a lost flash is not worth failing the request over
		s.log.Warn("Failed to push flash message",
			zap.Error(err),
			zap.String("session_id", sessionID))
		return err
	}

	return nil
}

// PopFlashes drains the pending flash messages for rendering.
func (s *sessionService) PopFlashes(ctx context.Context, sessionID string) ([]entity.Flash, error) {
	session, err := s.sessions.FindValidSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil || len(session.Flashes) == 0 {
		return nil, nil
	}

	if err := s.sessions.ClearFlashes(ctx, sessionID); err != nil {
		s.log.Warn("Failed to clear flashes",
			zap.Error(err),
			zap.String("session_id", sessionID))
	}

	return session.Flashes, nil
}
