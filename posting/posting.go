// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package posting implements post creation: store the uploaded image, credit
// the top-ranked user and record the post.
package posting

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sustainify/server/apperr"
	"github.com/sustainify/server/imagestore"
	"github.com/sustainify/server/models"
	"github.com/sustainify/server/store"
)

const successMessage = "Post created successfully"

type ImageStore interface {
	Save(ctx context.Context, data []byte) (imagestore.Image, error)
	Remove(filename string) error
}

type Repository interface {
	TopUser(ctx context.Context) (models.User, error)
	RewardAndPost(ctx context.Context, delta int64, np models.NewPost) (models.Post, int64, error)
}

// Ensure the concrete adapters satisfy the ports.
var (
	_ ImageStore = (*imagestore.Store)(nil)
	_ Repository = (*store.Store)(nil)
)

type Service struct {
	images ImageStore
	repo   Repository
	reward int64
}

// New returns a Service awarding reward points per post. A non-positive
// reward falls back to models.DefaultRewardPoints.
func New(images ImageStore, repo Repository, reward int64) *Service {
	if reward <= 0 {
		reward = models.DefaultRewardPoints
	}
	return &Service{images: images, repo: repo, reward: reward}
}

// CreatePost runs the full workflow. Every returned error is an *apperr.Error.
// If a step after the image write fails, the image is removed again.
func (s *Service) CreatePost(ctx context.Context, req models.CreatePostRequest) (resp models.CreatePostResponse, err error) {
	if err := req.Validate(); err != nil {
		return resp, apperr.BadRequest(err.Error(), err)
	}

	data, err := DecodeImage(req.Image)
	if err != nil {
		return resp, err
	}

	img, err := s.images.Save(ctx, data)
	if err != nil {
		return resp, apperr.Internal("failed to save image", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := s.images.Remove(img.Filename); rmErr != nil {
			slog.Error("failed to remove orphaned image", "filename", img.Filename, "error", rmErr)
		}
	}()

	user, err := s.repo.TopUser(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return resp, apperr.NotFound("no users found")
	}
	if err != nil {
		return resp, apperr.Internal("failed to query top user", err)
	}

	post, score, err := s.repo.RewardAndPost(ctx, s.reward, models.NewPost{
		UserID:   user.ID,
		ImageURL: img.URL,
		Filename: img.Filename,
	})
	if errors.Is(err, store.ErrNotFound) {
		// The user vanished between ranking and crediting
		return resp, apperr.NotFound("no users found")
	}
	if err != nil {
		return resp, apperr.Internal("failed to record post", err)
	}

	slog.Info("post created",
		"post_id", post.ID,
		"user_id", user.ID,
		"filename", img.Filename,
		"path", img.Path,
		"new_score", score,
	)

	return models.CreatePostResponse{
		Message:      successMessage,
		PostID:       post.ID,
		UserID:       user.ID,
		ImageURL:     post.ImageURL,
		Filename:     post.Filename,
		Timestamp:    post.Timestamp,
		NewUserScore: score,
	}, nil
}

var errLineBreak = errors.New("line breaks are not allowed")

// DecodeImage decodes standard, canonical Base64: padding bits must be zero
// and line breaks are rejected, so every accepted input re-encodes to itself.
// Malformed input is a bad request.
func DecodeImage(encoded string) ([]byte, error) {
	if strings.ContainsAny(encoded, "\r\n") {
		return nil, apperr.BadRequest(fmt.Sprintf("invalid base64 image: %v", errLineBreak), errLineBreak)
	}
	data, err := base64.StdEncoding.Strict().DecodeString(encoded)
	if err != nil {
		return nil, apperr.BadRequest(fmt.Sprintf("invalid base64 image: %v", err), err)
	}
	if len(data) == 0 {
		return nil, apperr.BadRequest(models.ErrImageRequired.Error(), models.ErrImageRequired)
	}
	return data, nil
}
