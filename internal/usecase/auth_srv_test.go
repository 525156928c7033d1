package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-watchlist/internal/dto/request"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/utils"
)

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:            "Mia",
		Email:           "mia@example.com",
		Password:        "longenough",
		ConfirmPassword: "longenough",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unconfirmed user and sends confirmation email", func(t *testing.T) {
		env := newTestEnv()

		err := env.service.Auth.Register(ctx, registerRequest())
		require.NoError(t, err)

		user := env.users.byEmail("mia@example.com")
		require.NotNil(t, user)
		assert.Equal(t, "Mia", user.Name)
		assert.False(t, user.Confirmed)
		assert.Empty(t, user.Movies)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "longenough", user.PasswordHash)

		require.Len(t, env.mailer.sent, 1)
		assert.Equal(t, "mia@example.com", env.mailer.sent[0].To)
		assert.True(t, strings.HasPrefix(env.mailer.sent[0].ConfirmURL,
			"http://localhost:8080/confirm_email/"))
	})

	t.Run("duplicate email is rejected and no second user is created", func(t *testing.T) {
		env := newTestEnv()

		require.NoError(t, env.service.Auth.Register(ctx, registerRequest()))

		err := env.service.Auth.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, usecase.ErrEmailTaken)
		assert.Len(t, env.users.users, 1)
		assert.Len(t, env.mailer.sent, 1)
	})

	t.Run("mismatched passwords fail validation", func(t *testing.T) {
		env := newTestEnv()

		req := registerRequest()
		req.ConfirmPassword = "different00"

		err := env.service.Auth.Register(ctx, req)
		assert.ErrorIs(t, err, usecase.ErrValidation)
		assert.Empty(t, env.users.users)
	})

	t.Run("failed captcha fails validation", func(t *testing.T) {
		env := newTestEnv()
		env.captcha.err = errors.New("challenge rejected")

		err := env.service.Auth.Register(ctx, registerRequest())
		assert.ErrorIs(t, err, usecase.ErrValidation)
		assert.Empty(t, env.users.users)
	})

	t.Run("mail failure surfaces loudly", func(t *testing.T) {
		env := newTestEnv()
		env.mailer.err = errors.New("smtp down")

		err := env.service.Auth.Register(ctx, registerRequest())
		require.Error(t, err)
		assert.NotErrorIs(t, err, usecase.ErrValidation)
	})
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctx := context.Background()

	confirmToken := func(env *testEnv) string {
		require.Len(t, env.mailer.sent, 1)
		url := env.mailer.sent[0].ConfirmURL
		return url[strings.LastIndex(url, "/")+1:]
	}

	t.Run("valid token confirms the user", func(t *testing.T) {
		env := newTestEnv()
		require.NoError(t, env.service.Auth.Register(ctx, registerRequest()))

		err := env.service.Auth.ConfirmEmail(ctx, confirmToken(env))
		require.NoError(t, err)
		assert.True(t, env.users.byEmail("mia@example.com").Confirmed)
	})

	t.Run("confirming twice is harmless", func(t *testing.T) {
		env := newTestEnv()
		require.NoError(t, env.service.Auth.Register(ctx, registerRequest()))
		token := confirmToken(env)

		require.NoError(t, env.service.Auth.ConfirmEmail(ctx, token))
		require.NoError(t, env.service.Auth.ConfirmEmail(ctx, token))
		assert.True(t, env.users.byEmail("mia@example.com").Confirmed)
	})

	t.Run("tampered token is invalid", func(t *testing.T) {
		env := newTestEnv()
		require.NoError(t, env.service.Auth.Register(ctx, registerRequest()))

		err := env.service.Auth.ConfirmEmail(ctx, confirmToken(env)+"x")
		assert.ErrorIs(t, err, utils.ErrTokenInvalid)
		assert.False(t, env.users.byEmail("mia@example.com").Confirmed)
	})

	t.Run("valid token for unknown email reports a generic failure", func(t *testing.T) {
		env := newTestEnv()

		token := utils.NewTokenSigner("test-secret").Issue("ghost@example.com", usecase.PurposeEmailConfirm)

		err := env.service.Auth.ConfirmEmail(ctx, token)
		assert.ErrorIs(t, err, usecase.ErrUnknownEmail)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, env *testEnv, confirm bool) {
		require.NoError(t, env.service.Auth.Register(ctx, registerRequest()))
		if confirm {
			env.users.byEmail("mia@example.com").Confirmed = true
		}
	}

	t.Run("unknown email", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.service.Auth.Login(ctx, &request.LoginRequest{
			Email: "nobody@example.com", Password: "whatever",
		})
		assert.ErrorIs(t, err, usecase.ErrNoSuchAccount)
	})

	t.Run("unconfirmed user cannot log in even with correct password", func(t *testing.T) {
		env := newTestEnv()
		register(t, env, false)

		_, err := env.service.Auth.Login(ctx, &request.LoginRequest{
			Email: "mia@example.com", Password: "longenough",
		})
		assert.ErrorIs(t, err, usecase.ErrNotConfirmed)
	})

	t.Run("wrong password after confirmation", func(t *testing.T) {
		env := newTestEnv()
		register(t, env, true)

		_, err := env.service.Auth.Login(ctx, &request.LoginRequest{
			Email: "mia@example.com", Password: "not-the-password",
		})
		assert.ErrorIs(t, err, usecase.ErrWrongPassword)
	})

	t.Run("successful login returns the user", func(t *testing.T) {
		env := newTestEnv()
		register(t, env, true)

		user, err := env.service.Auth.Login(ctx, &request.LoginRequest{
			Email: "mia@example.com", Password: "longenough",
		})
		require.NoError(t, err)
		assert.Equal(t, "mia@example.com", user.Email)
		assert.Equal(t, "Mia", user.Name)
		assert.NotEmpty(t, user.ID)
	})
}
