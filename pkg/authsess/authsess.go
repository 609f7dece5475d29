package authsess

import "time"

type AuthSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

type Repository interface {
	Create(userID, sessionID string) (string, error)
	IsValid(userID string) (bool, error)
	Invalidate(userID string) error
}
