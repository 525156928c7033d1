package entity

import (
	"time"
)

type Flash struct {
	Message  string `bson:"message"`
	Category string `bson:"category"`
}

// Session is the server-side state behind the client cookie. Identity fields
// are empty for anonymous sessions; theme and flashes exist either way, so a
// logout can clear identity without resetting the theme preference.
type Session struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id,omitempty"`
	Email     string    `bson:"email,omitempty"`
	Name      string    `bson:"name,omitempty"`
	Theme     string    `bson:"theme"`
	Flashes   []Flash   `bson:"flashes"`
	CreatedAt time.Time `bson:"created_at"`
	ExpiresAt time.Time `bson:"expires_at"`
}

func (s *Session) Authenticated() bool {
	return s.UserID != ""
}
