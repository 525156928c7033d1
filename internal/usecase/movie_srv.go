package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/internal/data/repository"
	"movie-watchlist/internal/dto/request"
	"movie-watchlist/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	ListOwned(ctx context.Context, userID string) ([]entity.Movie, error)
	Add(ctx context.Context, userID string, req *request.MovieRequest) (*entity.Movie, error)
	Get(ctx context.Context, id string) (*entity.Movie, error)
	Edit(ctx context.Context, id string, req *request.ExtendedMovieRequest) (*entity.Movie, error)
	Rate(ctx context.Context, id, rawRating string) error
	MarkWatched(ctx context.Context, id string) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log,
	}
}

// ListOwned resolves the user's movie id list and fetches the documents in
// one batch query, in store order.
func (s *movieService) ListOwned(ctx context.Context, userID string) ([]entity.Movie, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user for listing", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user == nil {
		s.log.Warn("Listing for unknown user", zap.String("user_id", userID))
		return nil, ErrNoSuchAccount
	}

	movies, err := s.repo.Movie.FindByIDs(ctx, user.Movies)
	if err != nil {
		s.log.Error("Failed to fetch owned movies", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to fetch movies: %w", err)
	}

	return movies, nil
}

func (s *movieService) Add(ctx context.Context, userID string, req *request.MovieRequest) (*entity.Movie, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	// 2. Create movie with minimal fields
	movie := &entity.Movie{
		ID:       utils.GenerateID(),
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
		Rating:   0,
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	// 3. Append id to the owner's list. Separate write from the insert; a
	// crash in between leaves an orphaned movie document.
	if err := s.repo.User.PushMovie(ctx, userID, movie.ID); err != nil {
		s.log.Error("Failed to attach movie to user",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("movie_id", movie.ID))
		return nil, fmt.Errorf("failed to attach movie: %w", err)
	}

	s.log.Info("Movie added",
		zap.String("movie_id", movie.ID),
		zap.String("user_id", userID),
		zap.String("title", movie.Title))

	return movie, nil
}

// Get fetches a movie by id. Ownership is not checked: any authenticated
// user may view any movie id.
func (s *movieService) Get(ctx context.Context, id string) (*entity.Movie, error) {
	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", id))
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	return movie, nil
}

// Edit overwrites only the extended metadata fields and leaves everything
// else untouched. Fails without writing when the movie does not exist.
func (s *movieService) Edit(ctx context.Context, id string, req *request.ExtendedMovieRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Edit movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Cast = req.Cast
	movie.Series = req.Series
	movie.Tags = req.Tags
	movie.Description = req.Description
	movie.VideoLink = req.VideoLink

	if err := s.repo.Movie.UpdateDetails(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", id))
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	s.log.Info("Movie updated", zap.String("movie_id", id))

	return movie, nil
}

// Rate parses the rating query value and overwrites the rating field only.
// An unparseable value fails validation and performs no write.
func (s *movieService) Rate(ctx context.Context, id, rawRating string) error {
	rating, err := strconv.Atoi(rawRating)
	if err != nil {
		s.log.Warn("Unparseable rating", zap.String("movie_id", id), zap.String("rating", rawRating))
		return fmt.Errorf("%w: rating must be a whole number", ErrValidation)
	}

	if err := s.repo.Movie.SetRating(ctx, id, rating); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to rate movie", zap.Error(err), zap.String("movie_id", id))
		return fmt.Errorf("failed to rate movie: %w", err)
	}

	s.log.Info("Movie rated", zap.String("movie_id", id), zap.Int("rating", rating))

	return nil
}

func (s *movieService) MarkWatched(ctx context.Context, id string) error {
	if err := s.repo.Movie.SetLastWatched(ctx, id, time.Now()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMovieNotFound
		}
		s.log.Error("Failed to mark movie watched", zap.Error(err), zap.String("movie_id", id))
		return fmt.Errorf("failed to mark movie watched: %w", err)
	}

	s.log.Info("Movie marked watched", zap.String("movie_id", id))

	return nil
}
