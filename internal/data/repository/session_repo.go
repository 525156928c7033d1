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

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindValidSession(ctx context.Context, id string) (*entity.Session, error)
	SetIdentity(ctx context.Context, id, userID, email, name string) error
	ClearIdentity(ctx context.Context, id string) error
	SetTheme(ctx context.Context, id, theme string) error
	PushFlash(ctx context.Context, id string, flash entity.Flash) error
	ClearFlashes(ctx context.Context, id string) error
}

type sessionRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewSessionRepository(db database.MongoIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		col: db.Collection("sessions"),
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if _, err := r.col.InsertOne(ctx, session); err != nil {
		r.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("session_id", session.ID),
		)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *sessionRepository) FindValidSession(ctx context.Context, id string) (*entity.Session, error) {
	var session entity.Session
	err := r.col.FindOne(ctx, bson.M{
		"_id":        id,
		"expires_at": bson.M{"$gt": time.Now()},
	}).Decode(&session)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session",
			zap.Error(err),
			zap.String("session_id", id),
		)
		return nil, fmt.Errorf("find session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) SetIdentity(ctx context.Context, id, userID, email, name string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{
		"user_id": userID,
		"email":   email,
		"name":    name,
	}})
}

// ClearIdentity removes identity fields only; theme and flashes stay.
func (r *sessionRepository) ClearIdentity(ctx context.Context, id string) error {
	return r.update(ctx, id, bson.M{"$unset": bson.M{
		"user_id": "",
		"email":   "",
		"name":    "",
	}})
}

func (r *sessionRepository) SetTheme(ctx context.Context, id, theme string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"theme": theme}})
}

func (r *sessionRepository) PushFlash(ctx context.Context, id string, flash entity.Flash) error {
	return r.update(ctx, id, bson.M{"$push": bson.M{"flashes": flash}})
}

func (r *sessionRepository) ClearFlashes(ctx context.Context, id string) error {
	return r.update(ctx, id, bson.M{"$set": bson.M{"flashes": []entity.Flash{}}})
}

func (r *sessionRepository) update(ctx context.Context, id string, update bson.M) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		r.log.Error("Failed to update session",
			zap.Error(err),
			zap.String("session_id", id),
		)
		return fmt.Errorf("update session %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}
