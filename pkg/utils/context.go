package utils

import (
	"context"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	IdentityKey  contextKey = "identity"
	ThemeKey     contextKey = "theme"
)

// Identity is the immutable per-request snapshot of the authenticated user,
// threaded through the context instead of read from ambient session state.
type Identity struct {
	UserID string
	Email  string
	Name   string
}

func SetSessionContext(ctx context.Context, sessionID, theme string) context.Context {
	ctx = context.WithValue(ctx, SessionIDKey, sessionID)
	ctx = context.WithValue(ctx, ThemeKey, theme)
	return ctx
}

func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDKey).(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}

func GetThemeFromContext(ctx context.Context) string {
	theme, ok := ctx.Value(ThemeKey).(string)
	if !ok || theme == "" {
		return "light"
	}
	return theme
}

func SetIdentityContext(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(Identity)
	if !ok || identity.UserID == "" {
		return Identity{}, false
	}
	return identity, true
}
