package session

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

var (
	ErrNotFound   = errors.New("session not found")
	ErrInvalidID  = errors.New("invalid session id format")
	ErrValidation = errors.New("title and content are required")
)

type Session struct {
	MongoID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID              string             `json:"id" bson:"-"`
	OwnerID         string             `json:"ownerId" bson:"ownerId"`
	Title           string             `json:"title" bson:"title"`
	Tags            []string           `json:"tags" bson:"tags"`
	Content         string             `json:"content" bson:"content"`
	ScheduledAt     *time.Time         `json:"scheduledAt,omitempty" bson:"scheduledAt,omitempty"`
	DurationMinutes int                `json:"durationMinutes,omitempty" bson:"durationMinutes,omitempty"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Draft carries the owner-editable fields of a save-draft request.
type Draft struct {
	ID              string     `json:"id,omitempty"`
	Title           string     `json:"title"`
	Tags            []string   `json:"tags,omitempty"`
	Content         string     `json:"content"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
	DurationMinutes int        `json:"durationMinutes,omitempty"`
}

type Repository interface {
	Create(s *Session) error
	FindPublished(id string) (*Session, error)
	ListPublished() ([]*Session, error)
	FindOwned(ownerID, id string) (*Session, error)
	ListOwned(ownerID string) ([]*Session, error)
	UpdateDraft(ownerID, id string, d Draft) (*Session, error)
	Publish(ownerID, id string) (*Session, error)
	Delete(ownerID, id string) error
}
