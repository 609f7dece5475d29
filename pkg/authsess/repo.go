package authsess

import (
	"database/sql"
	"time"
)

const sessionTTL = time.Hour

type MySQLRepo struct {
	DB *sql.DB
}

func NewMySQLRepo(db *sql.DB) *MySQLRepo {
	return &MySQLRepo{DB: db}
}

func (r *MySQLRepo) Create(userID string, sessionID string) (string, error) {
	_, err := r.DB.Exec(`
		INSERT INTO auth_sessions (id, user_id, created_at, expires_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, userID, time.Now(), time.Now().Add(sessionTTL))

	return sessionID, err
}

func (r *MySQLRepo) IsValid(userID string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM auth_sessions
			WHERE user_id = ? AND expires_at > ?
		)
	`, userID, time.Now().UTC()).Scan(&exists)
	return exists, err
}

func (r *MySQLRepo) Invalidate(userID string) error {
	_, err := r.DB.Exec(`
		DELETE FROM auth_sessions WHERE user_id = ?
	`, userID)
	return err
}
