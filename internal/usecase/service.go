package usecase

import (
	"context"

	"movie-watchlist/internal/data/repository"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

// MailDispatcher sends the confirmation email. Failures must surface to the
// caller; a dropped confirmation email is not silently ignored.
type MailDispatcher interface {
	SendConfirmation(ctx context.Context, toEmail, name, confirmURL string) error
}

// CaptchaVerifier checks the bot-mitigation challenge response.
type CaptchaVerifier interface {
	Verify(ctx context.Context, response string) error
}

type Service struct {
	Auth    AuthService
	Movie   MovieService
	Session SessionService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mailer MailDispatcher,
	captcha CaptchaVerifier,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, mailer, captcha, log),
		Movie:   NewMovieService(repo, log),
		Session: NewSessionService(repo.Session, config, log),
	}
}
