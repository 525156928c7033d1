package repository

import (
	"context"
	"fmt"
	"time"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindByIDs(ctx context.Context, ids []string) ([]entity.Movie, error)
	UpdateDetails(ctx context.Context, movie *entity.Movie) error
	SetRating(ctx context.Context, id string, rating int) error
	SetLastWatched(ctx context.Context, id string, watchedAt time.Time) error
}

type movieRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewMovieRepository(db database.MongoIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		col: db.Collection("movies"),
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	if _, err := r.col.InsertOne(ctx, movie); err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	var movie entity.Movie
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}

	return &movie, nil
}

// FindByIDs fetches all movies whose id is in the set, in one batch query.
// Result order is whatever the store returns; callers must not rely on it.
func (r *movieRepository) FindByIDs(ctx context.Context, ids []string) ([]entity.Movie, error) {
	if len(ids) == 0 {
		return []entity.Movie{}, nil
	}

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Error("Failed to find movies by ids",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find movies by ids: %w", err)
	}
	defer cur.Close(ctx)

	movies := []entity.Movie{}
	for cur.Next(ctx) {
		var movie entity.Movie
		if err := cur.Decode(&movie); err != nil {
			return nil, fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, movie)
	}

	return movies, cur.Err()
}

// UpdateDetails overwrites only the extended metadata fields.
func (r *movieRepository) UpdateDetails(ctx context.Context, movie *entity.Movie) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": movie.ID},
		bson.M{"$set": bson.M{
			"cast":        movie.Cast,
			"series":      movie.Series,
			"tags":        movie.Tags,
			"description": movie.Description,
			"video_link":  movie.VideoLink,
		}},
	)
	if err != nil {
		r.log.Error("Failed to update movie details",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %s: %w", movie.ID, err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) SetRating(ctx context.Context, id string, rating int) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating": rating}},
	)
	if err != nil {
		r.log.Error("Failed to set movie rating",
			zap.Error(err),
			zap.String("movie_id", id),
			zap.Int("rating", rating),
		)
		return fmt.Errorf("set rating for movie %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *movieRepository) SetLastWatched(ctx context.Context, id string, watchedAt time.Time) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_watched": watchedAt}},
	)
	if err != nil {
		r.log.Error("Failed to set last watched",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return fmt.Errorf("set last watched for movie %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
