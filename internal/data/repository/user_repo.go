package repository

import (
	"context"
	"fmt"

	"movie-watchlist/internal/data/entity"
	"movie-watchlist/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SetConfirmed(ctx context.Context, email string) error
	PushMovie(ctx context.Context, userID, movieID string) error
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(db database.MongoIface, log *zap.Logger) UserRepository {
	return &userRepository{
		col: db.Collection("users"),
		log: log.With(zap.String("repository", "user")),
	}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := r.col.InsertOne(ctx, user); err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by id",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("find user %s: %w", id, err)
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &user, nil
}

func (r *userRepository) SetConfirmed(ctx context.Context, email string) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"confirmed": true}},
	)
	if err != nil {
		r.log.Error("Failed to confirm user",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("confirm user: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *userRepository) PushMovie(ctx context.Context, userID, movieID string) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"movies": movieID}},
	)
	if err != nil {
		r.log.Error("Failed to push movie onto user list",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("push movie %s to user %s: %w", movieID, userID, err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
