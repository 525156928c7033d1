package usecase_test

import (
	"context"
	"time"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/usecase"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

// ---------------- user repository fake ----------------

type fakeUserRepo struct {
	users     []*entity.User
	createErr error
	findErr   error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, user := range f.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetConfirmed(ctx context.Context, email string) error {
	for _, user := range f.users {
		if user.Email == email {
			user.Confirmed = true
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) PushMovie(ctx context.Context, userID, movieID string) error {
	for _, user := range f.users {
		if user.ID == userID {
			user.Movies = append(user.Movies, movieID)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeUserRepo) byEmail(email string) *entity.User {
	for _, user := range f.users {
		if user.Email == email {
			return user
		}
	}
	return nil
}

// ---------------- movie repository fake ----------------

type fakeMovieRepo struct {
	order       []string
	movies      map[string]*entity.Movie
	updateCalls int
	ratingCalls int
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: map[string]*entity.Movie{}}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	stored := *movie
	f.movies[movie.ID] = &stored
	f.order = append(f.order, movie.ID)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	found := *movie
	return &found, nil
}

func (f *fakeMovieRepo) FindByIDs(ctx context.Context, ids []string) ([]entity.Movie, error) {
	wanted := map[string]bool{}
	for _, id := range ids {
		wanted[id] = true
	}

	out := []entity.Movie{}
	for _, id := range f.order {
		if wanted[id] {
			out = append(out, *f.movies[id])
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) UpdateDetails(ctx context.Context, movie *entity.Movie) error {
	stored, ok := f.movies[movie.ID]
	if !ok {
		return repository.ErrNotFound
	}
	f.updateCalls++
	stored.Cast = movie.Cast
	stored.Series = movie.Series
	stored.Tags = movie.Tags
	stored.Description = movie.Description
	stored.VideoLink = movie.VideoLink
	return nil
}

func (f *fakeMovieRepo) SetRating(ctx context.Context, id string, rating int) error {
	stored, ok := f.movies[id]
	if !ok {
		return repository.ErrNotFound
	}
	f.ratingCalls++
	stored.Rating = rating
	return nil
}

func (f *fakeMovieRepo) SetLastWatched(ctx context.Context, id string, watchedAt time.Time) error {
	stored, ok := f.movies[id]
	if !ok {
		return repository.ErrNotFound
	}
	stored.LastWatched = &watchedAt
	return nil
}

// ---------------- session repository fake ----------------

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*entity.Session{}}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	stored := *session
	f.sessions[session.ID] = &stored
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, id string) (*entity.Session, error) {
	session, ok := f.sessions[id]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	found := *session
	return &found, nil
}

func (f *fakeSessionRepo) SetIdentity(ctx context.Context, id, userID, email, name string) error {
	session, ok := f.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	session.UserID, session.Email, session.Name = userID, email, name
	return nil
}

func (f *fakeSessionRepo) ClearIdentity(ctx context.Context, id string) error {
	session, ok := f.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	session.UserID, session.Email, session.Name = "", "", ""
	return nil
}

func (f *fakeSessionRepo) SetTheme(ctx context.Context, id, theme string) error {
	session, ok := f.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	session.Theme = theme
	return nil
}

func (f *fakeSessionRepo) PushFlash(ctx context.Context, id string, flash entity.Flash) error {
	session, ok := f.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	session.Flashes = append(session.Flashes, flash)
	return nil
}

func (f *fakeSessionRepo) ClearFlashes(ctx context.Context, id string) error {
	session, ok := f.sessions[id]
	if !ok {
		return repository.ErrNotFound
	}
	session.Flashes = []entity.Flash{}
	return nil
}

// ---------------- collaborator fakes ----------------

type sentMail struct {
	To         string
	Name       string
	ConfirmURL string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendConfirmation(ctx context.Context, toEmail, name, confirmURL string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{To: toEmail, Name: name, ConfirmURL: confirmURL})
	return nil
}

type fakeCaptcha struct {
	err error
}

func (f *fakeCaptcha) Verify(ctx context.Context, response string) error {
	return f.err
}

// ---------------- wiring helpers ----------------

type testEnv struct {
	users    *fakeUserRepo
	movies   *fakeMovieRepo
	sessions *fakeSessionRepo
	mailer   *fakeMailer
	captcha  *fakeCaptcha
	service  *usecase.Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:    &fakeUserRepo{},
		movies:   newFakeMovieRepo(),
		sessions: newFakeSessionRepo(),
		mailer:   &fakeMailer{},
		captcha:  &fakeCaptcha{},
	}

	repo := &repository.Repository{
		User:    env.users,
		Movie:   env.movies,
		Session: env.sessions,
	}

	config := &utils.Config{
		App:     utils.AppConfig{BaseURL: "http://localhost:8080"},
		Session: utils.SessionConfig{CookieName: "watchlist_session", ExpiryHours: 24},
		Token:   utils.TokenConfig{SecretKey: "test-secret", MaxAgeSeconds: 3600},
	}

	env.service = usecase.NewService(repo, config, env.mailer, env.captcha, zap.NewNop())

	return env
}
