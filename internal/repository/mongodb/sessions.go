// Package mongodb keeps per-user session records (the cities a user had
// favorited at last logout) in a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weatherfav/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	sessionsCollection = "sessions"
	connectTimeout     = 10 * time.Second
	pingTimeout        = 5 * time.Second
)

type sessionDocument struct {
	UserID    int64     `bson:"user_id"`
	Cities    []string  `bson:"cities"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type SessionStorage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewSessionStorage подключается к MongoDB и создает уникальный индекс по user_id
func NewSessionStorage(ctx context.Context, uri, database string) (*SessionStorage, error) {
	ctxConnect, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctxConnect, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	s := &SessionStorage{
		client: client,
		coll:   client.Database(database).Collection(sessionsCollection),
	}

	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	_, err = s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to create sessions index: %w", err)
	}

	return s, nil
}

func (s *SessionStorage) SessionFind(ctx context.Context, userID int64) (models.SessionRecord, error) {
	var doc sessionDocument
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.SessionRecord{}, fmt.Errorf("%w: session for user %d", models.ErrUnfound, userID)
		}
		return models.SessionRecord{}, fmt.Errorf("failed to find session: %w", err)
	}

	cities := doc.Cities
	if cities == nil {
		cities = []string{}
	}

	return models.SessionRecord{
		UserID:    doc.UserID,
		Cities:    cities,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func (s *SessionStorage) SessionCreate(ctx context.Context, record models.SessionRecord) error {
	doc := sessionDocument{
		UserID:    record.UserID,
		Cities:    nonNil(record.Cities),
		UpdatedAt: time.Now().UTC(),
	}

	if _, err := s.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: session for user %d", models.ErrConflict, record.UserID)
		}
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// SessionUpdateCities перезаписывает список городов без upsert
func (s *SessionStorage) SessionUpdateCities(ctx context.Context, userID int64, cities []string) error {
	result, err := s.coll.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"cities":     nonNil(cities),
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(false),
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: session for user %d", models.ErrUnfound, userID)
	}
	return nil
}

// SessionPurge удаляет все сессии; индекс на user_id сохраняется
func (s *SessionStorage) SessionPurge(ctx context.Context) error {
	if _, err := s.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to purge sessions: %w", err)
	}
	return nil
}

func (s *SessionStorage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

func (s *SessionStorage) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongo: %w", err)
	}
	return nil
}

func nonNil(cities []string) []string {
	if cities == nil {
		return []string{}
	}
	return cities
}
