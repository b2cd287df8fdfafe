// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"time"
)

// DefaultRewardPoints is awarded to the top-ranked user for every new post.
const DefaultRewardPoints = 10

var ErrImageRequired = errors.New("image is required")

// Request types

// CreatePostRequest carries a Base64-encoded image.
type CreatePostRequest struct {
	Image string `json:"image"`
}

// Validate checks field presence only. Decoding happens in the workflow.
func (r CreatePostRequest) Validate() error {
	if r.Image == "" {
		return ErrImageRequired
	}
	return nil
}

// Response types

type CreatePostResponse struct {
	Message      string    `json:"message"`
	PostID       string    `json:"post_id"`
	UserID       string    `json:"user_id"`
	ImageURL     string    `json:"image_url"`
	Filename     string    `json:"filename"`
	Timestamp    time.Time `json:"timestamp"`
	NewUserScore int64     `json:"new_user_score"`
}

type ListPostsResponse struct {
	Posts []Post `json:"posts"`
}

// Domain types

type User struct {
	ID                  string    `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	SustainabilityScore int64     `json:"sustainability_score"`
	CreatedAt           time.Time `json:"-"`
}

// UserSummary is the public projection returned by the ranked listing.
type UserSummary struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	Email               string `json:"email"`
	SustainabilityScore int64  `json:"sustainability_score"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:                  u.ID,
		Username:            u.Username,
		Email:               u.Email,
		SustainabilityScore: u.SustainabilityScore,
	}
}

// NewUser holds the fields needed to seed a user.
type NewUser struct {
	Username string
	Email    string
	Score    int64
}

type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ImageURL  string    `json:"image_url"`
	Filename  string    `json:"filename"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPost holds the caller-supplied fields of a post. ID and timestamp are
// assigned by the store.
type NewPost struct {
	UserID   string
	ImageURL string
	Filename string
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
