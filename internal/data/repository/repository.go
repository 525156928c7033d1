package repository

import (
	"errors"

	"movie-watchlist/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by update operations that matched no document.
var ErrNotFound = errors.New("document not found")

type Repository struct {
	User    UserRepository
	Movie   MovieRepository
	Session SessionRepository
}

func NewRepository(db database.MongoIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Session: NewSessionRepository(db, log),
	}
}
