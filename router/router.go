// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/sustainify/server/cliparse"
	"github.com/sustainify/server/handlers"
	"github.com/sustainify/server/ident"
	"github.com/sustainify/server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(db)
	postHandler := handlers.NewPostHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Leaderboard
	mux.HandleFunc("GET /{$}", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("GET /users/{id}", middleware.WithLogging(userHandler.GetUser))

	// Posts
	mux.HandleFunc("POST /create_post", middleware.WithLogging(middleware.LimitBody(cfg.MaxUploadBytes, postHandler.CreatePost)))
	mux.HandleFunc("GET /latest_post", middleware.WithLogging(postHandler.LatestPost))
	mux.HandleFunc("GET /posts", middleware.WithLogging(postHandler.ListPosts))

	mux.HandleFunc("GET /world", middleware.WithLogging(handlers.World))

	// Uploaded images
	prefix := cfg.UploadURLPrefix
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	mux.Handle("GET "+prefix, http.StripPrefix(prefix, uploadsOnly(http.FileServer(http.Dir(cfg.UploadDir)))))

	return mux
}

// uploadsOnly serves generated image names and nothing else, so directory
// listings and temp files stay hidden
func uploadsOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ident.IsImageFilename(r.URL.Path) {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
