package usecase

import (
	"errors"
)

// User-facing failure taxonomy. Handlers map these onto flashes, inline form
// errors, or a terminal 404; anything else bubbles up as a server error.
var (
	ErrValidation    = errors.New("validation failed")
	ErrEmailTaken    = errors.New("this email address is already registered")
	ErrNoSuchAccount = errors.New("that email does not exist")
	ErrNotConfirmed  = errors.New("email address is not confirmed")
	ErrWrongPassword = errors.New("wrong password")
	ErrUnknownEmail  = errors.New("could not confirm this email address")
	ErrMovieNotFound = errors.New("movie not found")
)
