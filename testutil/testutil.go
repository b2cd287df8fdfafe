// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sustainify/server/cliparse"
	"github.com/sustainify/server/db"
	"github.com/sustainify/server/ident"
	"github.com/sustainify/server/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// Each call gets its own file under t.TempDir, so tests never share state.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration with uploads going to
// a per-test temp directory
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()

	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     "file:test.db",
		DatabaseType:    db.TypeSQLite,
		UploadDir:       filepath.Join(t.TempDir(), "uploads"),
		UploadURLPrefix: cliparse.DefaultUploadURLPrefix,
		RewardPoints:    models.DefaultRewardPoints,
		MaxUploadBytes:  cliparse.DefaultMaxUploadBytes,
	}
}

// CreateTestUser inserts a user with the given score and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username string, score int64) string {
	t.Helper()

	userID, _ := ident.GenerateID(ident.UserIDBytes)
	_, err := conn.Exec(`
		INSERT INTO users (id, username, email, sustainability_score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, username+"@example.com", score, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return userID
}

// CreateTestUserWithID inserts a user with a fixed ID, for tie-break tests
func CreateTestUserWithID(t *testing.T, conn *sql.DB, userID, username string, score int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO users (id, username, email, sustainability_score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, username, username+"@example.com", score, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
}

// CreateTestPost inserts a post created at the given time and returns its ID
func CreateTestPost(t *testing.T, conn *sql.DB, userID string, createdAt time.Time) string {
	t.Helper()

	postID, _ := ident.GenerateID(ident.PostIDBytes)
	filename, _ := ident.NewImageFilename()
	_, err := conn.Exec(`
		INSERT INTO posts (id, user_id, image_url, filename, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, postID, userID, cliparse.DefaultUploadURLPrefix+filename, filename, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to create test post: %v", err)
	}

	return postID
}

// UserScore reads a user's current score
func UserScore(t *testing.T, conn *sql.DB, userID string) int64 {
	t.Helper()

	var score int64
	err := conn.QueryRow("SELECT sustainability_score FROM users WHERE id = $1", userID).Scan(&score)
	if err != nil {
		t.Fatalf("Failed to query score: %v", err)
	}
	return score
}

// CountPosts returns the number of stored posts
func CountPosts(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM posts").Scan(&n); err != nil {
		t.Fatalf("Failed to count posts: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
