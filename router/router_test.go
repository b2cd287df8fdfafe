// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sustainify/server/models"
	"github.com/sustainify/server/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)

	testutil.CreateTestUser(t, db, "alice", 12)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var users []models.UserSummary
	if err := json.NewDecoder(w.Body).Decode(&users); err != nil {
		t.Fatalf("Failed to decode leaderboard: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Errorf("Unexpected leaderboard: %+v", users)
	}
}

func TestWorldEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig(t))

	req := httptest.NewRequest("GET", "/world", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "<p>Hello, World!</p>" {
		t.Errorf("Unexpected body: %q", w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)

	// 400 and 404 are valid handler responses; 405 means no route
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"GET", "/world"},
		{"GET", "/users/some-id"},
		{"POST", "/create_post"},
		{"GET", "/latest_post"},
		{"GET", "/posts"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestSpecificMethodRouting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"POST to health endpoint", "POST", "/health", http.StatusMethodNotAllowed},
		{"GET create_post", "GET", "/create_post", http.StatusMethodNotAllowed},
		{"POST latest_post", "POST", "/latest_post", http.StatusMethodNotAllowed},
		{"DELETE root", "DELETE", "/", http.StatusMethodNotAllowed},
		{"unknown path", "GET", "/nope", http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != tc.expectedStatus {
				t.Errorf("Expected %d for %s %s, got %d", tc.expectedStatus, tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestCreatePostAndServeImage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)
	testutil.CreateTestUser(t, db, "alice", 20)

	image := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	body, _ := json.Marshal(models.CreatePostRequest{Image: base64.StdEncoding.EncodeToString(image)})
	req := httptest.NewRequest("POST", "/create_post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Create post failed: %d - %s", w.Code, w.Body.String())
	}

	var resp models.CreatePostResponse
	json.NewDecoder(w.Body).Decode(&resp)

	req = httptest.NewRequest("GET", resp.ImageURL, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected image to be served, got %d", w.Code)
	}
	if !bytes.Equal(w.Body.Bytes(), image) {
		t.Error("Served image does not match upload")
	}
}

func TestUploadsHideOtherFiles(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	mux := NewRouter(db, cfg)

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		t.Fatalf("Failed to create upload dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cfg.UploadDir, "secret.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	for _, p := range []string{cfg.UploadURLPrefix, cfg.UploadURLPrefix + "secret.txt"} {
		req := httptest.NewRequest("GET", p, nil)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404 for %s, got %d", p, w.Code)
		}
	}
}

func TestCreatePostBodyLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig(t)
	cfg.MaxUploadBytes = 64
	mux := NewRouter(db, cfg)
	testutil.CreateTestUser(t, db, "alice", 20)

	image := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 256)))
	body, _ := json.Marshal(models.CreatePostRequest{Image: image})
	req := httptest.NewRequest("POST", "/create_post", bytes.NewReader(body))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for oversized body, got %d", w.Code)
	}
	if n := testutil.CountPosts(t, db); n != 0 {
		t.Errorf("Expected no posts, got %d", n)
	}
}
