package usecase

import (
	"context"
	"fmt"
	"time"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/dto/request"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

// PurposeEmailConfirm tags confirmation tokens so they never verify under a
// different purpose.
const PurposeEmailConfirm = "email-confirm"

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) error
	ConfirmEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error)
}

type authService struct {
	repo    *repository.Repository
	config  *utils.Config
	tokens  *utils.TokenSigner
	mailer  MailDispatcher
	captcha CaptchaVerifier
	log     *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mailer MailDispatcher,
	captcha CaptchaVerifier,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:    repo,
		config:  config,
		tokens:  utils.NewTokenSigner(config.Token.SecretKey),
		mailer:  mailer,
		captcha: captcha,
		log:     log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) error {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Bot-mitigation challenge
	if err := s.captcha.Verify(ctx, req.CaptchaResponse); err != nil {
		s.log.Warn("Captcha verification failed", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("%w: captcha verification failed", ErrValidation)
	}

	// 3. Check email not already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existingUser != nil {
		return ErrEmailTaken
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password: %w", err)
	}

	// 5. Create user, unconfirmed until the emailed token comes back
	user := &entity.User{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Confirmed:    false,
		Movies:       []string{},
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to create account: %w", err)
	}

	// 6. Issue confirmation token and send mail. A mail failure fails the
	// request; the user can register again to get a fresh token.
	token := s.tokens.Issue(user.Email, PurposeEmailConfirm)
	confirmURL := fmt.Sprintf("%s/confirm_email/%s", s.config.App.BaseURL, token)

	if err := s.mailer.SendConfirmation(ctx, user.Email, user.Name, confirmURL); err != nil {
		s.log.Error("Failed to send confirmation email",
			zap.Error(err), zap.String("email", user.Email))
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return nil
}

func (s *authService) ConfirmEmail(ctx context.Context, token string) error {
	maxAge := time.Duration(s.config.Token.MaxAgeSeconds) * time.Second

	// Token errors pass through so the handler can tell expired from invalid
	email, err := s.tokens.Verify(token, PurposeEmailConfirm, maxAge)
	if err != nil {
		s.log.Warn("Email confirmation token rejected", zap.Error(err))
		return err
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for confirmation", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to confirm email: %w", err)
	}
	if user == nil {
		// generic failure; do not reveal whether the email is registered
		return ErrUnknownEmail
	}

	// Idempotent: confirming an already-confirmed email is harmless
	if err := s.repo.User.SetConfirmed(ctx, email); err != nil {
		s.log.Error("Failed to set user confirmed", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to confirm email: %w", err)
	}

	s.log.Info("Email confirmed", zap.String("user_id", user.ID), zap.String("email", email))

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*entity.User, error) {
	// 1. Validate
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, ErrNoSuchAccount
	}

	// 3. Unconfirmed accounts cannot log in, regardless of password
	if !user.Confirmed {
		s.log.Warn("Unconfirmed user tried to login", zap.String("user_id", user.ID))
		return nil, ErrNotConfirmed
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, ErrWrongPassword
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return user, nil
}
