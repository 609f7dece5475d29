package user_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"wellnesshub/pkg/user"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func TestMySQLRepo_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := user.NewMySQLRepo(db)

	u := &user.User{ID: "id1", Username: "alice", Password: "hash"}
	assert.NoError(t, repo.Create(u))

	found, err := repo.FindByUsername("alice")
	assert.NoError(t, err)
	assert.Equal(t, "id1", found.ID)
	assert.Equal(t, "hash", found.Password)
}

func TestMySQLRepo_DuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := user.NewMySQLRepo(db)

	assert.NoError(t, repo.Create(&user.User{ID: "id1", Username: "alice", Password: "hash"}))
	assert.Error(t, repo.Create(&user.User{ID: "id2", Username: "alice", Password: "hash"}))
}

func TestMySQLRepo_FindMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	repo := user.NewMySQLRepo(db)

	found, err := repo.FindByUsername("ghost")
	assert.Nil(t, found)
	assert.EqualError(t, err, "user not found")
}
