// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/sustainify/server/ident"
	"github.com/sustainify/server/models"
)

// Limits for ListRecentPosts
const (
	DefaultPostLimit = 20
	MaxPostLimit     = 100
)

const postColumns = `id, user_id, image_url, filename, created_at`

func scanPost(row rowScanner) (models.Post, error) {
	var p models.Post
	err := row.Scan(&p.ID, &p.UserID, &p.ImageURL, &p.Filename, &p.Timestamp)
	return p, err
}

// CreatePost inserts a post with a generated id and the current time.
func (s *Store) CreatePost(ctx context.Context, np models.NewPost) (models.Post, error) {
	id, err := ident.GenerateID(ident.PostIDBytes)
	if err != nil {
		return models.Post{}, err
	}

	p := models.Post{
		ID:        id,
		UserID:    np.UserID,
		ImageURL:  np.ImageURL,
		Filename:  np.Filename,
		Timestamp: s.timestamp(),
	}

	_, err = s.q.ExecContext(ctx, `
		INSERT INTO posts (id, user_id, image_url, filename, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.UserID, p.ImageURL, p.Filename, p.Timestamp)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to insert post: %w", err)
	}

	return p, nil
}

// LatestPost returns the most recently created post.
func (s *Store) LatestPost(ctx context.Context) (models.Post, error) {
	row := s.q.QueryRowContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`)
	p, err := scanPost(row)
	if err != nil {
		return models.Post{}, notFound(err)
	}
	return p, nil
}

// ListRecentPosts returns up to limit posts, newest first.
func (s *Store) ListRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	if limit > MaxPostLimit {
		limit = MaxPostLimit
	}

	rows, err := s.q.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// RewardAndPost credits the user and records the post in one transaction,
// so a score increment always has a matching post.
func (s *Store) RewardAndPost(ctx context.Context, delta int64, np models.NewPost) (models.Post, int64, error) {
	var (
		post  models.Post
		score int64
	)

	err := s.withTx(ctx, func(tx *Store) error {
		var err error
		score, err = tx.IncrementScore(ctx, np.UserID, delta)
		if err != nil {
			return err
		}
		post, err = tx.CreatePost(ctx, np)
		return err
	})
	if err != nil {
		return models.Post{}, 0, err
	}

	return post, score, nil
}
