// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/sustainify/server/apperr"
	"github.com/sustainify/server/middleware"
	"github.com/sustainify/server/models"
	"github.com/sustainify/server/store"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(db *sql.DB) *UserHandler {
	return &UserHandler{store: store.New(db, nil)}
}

// ListUsers handles GET /
// Returns every user ranked by sustainability score. No users is an empty
// array, not an error.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsersByScore(r.Context())
	if err != nil {
		middleware.WriteError(w, apperr.Internal("failed to query users", err))
		return
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.WriteError(w, apperr.BadRequest("user id required", nil))
		return
	}

	user, err := h.store.GetUser(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.WriteError(w, apperr.NotFound("user not found"))
		return
	}
	if err != nil {
		middleware.WriteError(w, apperr.Internal("failed to query user", err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, user.Summary())
}
