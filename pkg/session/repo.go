package session

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("sessions"),
	}
}

func (r *MongoRepo) Create(s *Session) error {
	ctx := context.TODO()

	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("session already exists")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		s.MongoID = oid
		s.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

func (r *MongoRepo) FindPublished(id string) (*Session, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var s Session
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "status": StatusPublished}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	s.ID = s.MongoID.Hex()
	return &s, nil
}

func (r *MongoRepo) ListPublished() ([]*Session, error) {
	ctx := context.TODO()

	cursor, err := r.collection.Find(ctx, bson.M{"status": StatusPublished})
	if err != nil {
		return nil, fmt.Errorf("failed to list published sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := decodeAll(ctx, cursor)

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (r *MongoRepo) FindOwned(ownerID, id string) (*Session, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var s Session
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "ownerId": ownerID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	s.ID = s.MongoID.Hex()
	return &s, nil
}

func (r *MongoRepo) ListOwned(ownerID string) ([]*Session, error) {
	ctx := context.TODO()

	cursor, err := r.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list owned sessions: %w", err)
	}
	defer cursor.Close(ctx)

	sessions := decodeAll(ctx, cursor)

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt.After(sessions[j].UpdatedAt)
	})

	return sessions, nil
}

/* ownership is always part of the filter, never checked after the fetch */

func (r *MongoRepo) UpdateDraft(ownerID, id string, d Draft) (*Session, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := bson.M{
		"title":     d.Title,
		"tags":      d.Tags,
		"content":   d.Content,
		"status":    StatusDraft,
		"updatedAt": time.Now().UTC(),
	}
	if d.ScheduledAt != nil {
		set["scheduledAt"] = d.ScheduledAt
	}
	if d.DurationMinutes > 0 {
		set["durationMinutes"] = d.DurationMinutes
	}

	var updated Session
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "ownerId": ownerID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update draft: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func (r *MongoRepo) Publish(ownerID, id string) (*Session, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var published Session
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "ownerId": ownerID, "status": StatusDraft},
		bson.M{"$set": bson.M{"status": StatusPublished, "updatedAt": time.Now().UTC()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&published)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// no draft matched: either already published (idempotent) or not ours
		return r.FindOwned(ownerID, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to publish session: %w", err)
	}

	published.ID = published.MongoID.Hex()
	return &published, nil
}

func (r *MongoRepo) Delete(ownerID, id string) error {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "ownerId": ownerID})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) []*Session {
	var sessions []*Session
	for cursor.Next(ctx) {
		var s Session
		if cursor.Decode(&s) == nil {
			s.ID = s.MongoID.Hex()
			sessions = append(sessions, &s)
		}
	}
	return sessions
}
