// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/sustainify/server/apperr"
	"github.com/sustainify/server/cliparse"
	"github.com/sustainify/server/imagestore"
	"github.com/sustainify/server/middleware"
	"github.com/sustainify/server/models"
	"github.com/sustainify/server/posting"
	"github.com/sustainify/server/store"
)

type PostHandler struct {
	store   *store.Store
	posting *posting.Service
}

func NewPostHandler(db *sql.DB, cfg cliparse.Config) *PostHandler {
	s := store.New(db, nil)
	images := imagestore.New(cfg.UploadDir, cfg.UploadURLPrefix)
	return &PostHandler{
		store:   s,
		posting: posting.New(images, s, cfg.RewardPoints),
	}
}

// CreatePost handles POST /create_post
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteError(w, err)
		return
	}

	resp, err := h.posting.CreatePost(r.Context(), req)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// LatestPost handles GET /latest_post
func (h *PostHandler) LatestPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.store.LatestPost(r.Context())
	if errors.Is(err, store.ErrNotFound) {
		middleware.WriteError(w, apperr.NotFound("no posts found"))
		return
	}
	if err != nil {
		middleware.WriteError(w, apperr.Internal("failed to query latest post", err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, post)
}

// ListPosts handles GET /posts?limit=N
// Returns the most recent posts, newest first
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit := store.DefaultPostLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			middleware.WriteError(w, apperr.BadRequest("limit must be a positive integer", err))
			return
		}
		limit = n
	}

	posts, err := h.store.ListRecentPosts(r.Context(), limit)
	if err != nil {
		middleware.WriteError(w, apperr.Internal("failed to query posts", err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListPostsResponse{Posts: posts})
}
