// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/sustainify/server/ident"
	"github.com/sustainify/server/models"
)

// Ties on score are broken by ascending id so ranking is deterministic.
const userColumns = `id, username, email, sustainability_score, created_at`

const rankOrder = `ORDER BY sustainability_score DESC, id ASC`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.SustainabilityScore, &u.CreatedAt)
	return u, err
}

// TopUser returns the highest-scoring user.
func (s *Store) TopUser(ctx context.Context) (models.User, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users `+rankOrder+` LIMIT 1`)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

// ListUsersByScore returns every user, highest score first. The result is
// never nil.
func (s *Store) ListUsersByScore(ctx context.Context) ([]models.User, error) {
	rows, err := s.q.QueryContext(ctx, `SELECT `+userColumns+` FROM users `+rankOrder)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) GetUser(ctx context.Context, id string) (models.User, error) {
	row := s.q.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if err != nil {
		return models.User{}, notFound(err)
	}
	return u, nil
}

// CreateUser inserts a seed user.
func (s *Store) CreateUser(ctx context.Context, nu models.NewUser) (models.User, error) {
	if nu.Score < 0 {
		return models.User{}, fmt.Errorf("score must not be negative, got %d", nu.Score)
	}

	id, err := ident.GenerateID(ident.UserIDBytes)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{
		ID:                  id,
		Username:            nu.Username,
		Email:               nu.Email,
		SustainabilityScore: nu.Score,
		CreatedAt:           s.timestamp(),
	}

	_, err = s.q.ExecContext(ctx, `
		INSERT INTO users (id, username, email, sustainability_score, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Username, u.Email, u.SustainabilityScore, u.CreatedAt)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return u, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	err := s.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	return n, err
}

// IncrementScore adds delta to the user's score in a single statement and
// returns the new score. Concurrent increments never overwrite each other.
func (s *Store) IncrementScore(ctx context.Context, userID string, delta int64) (int64, error) {
	if delta <= 0 {
		return 0, ErrInvalidDelta
	}

	var score int64
	err := s.q.QueryRowContext(ctx, `
		UPDATE users
		SET sustainability_score = sustainability_score + $1
		WHERE id = $2
		RETURNING sustainability_score
	`, delta, userID).Scan(&score)
	if err != nil {
		return 0, notFound(err)
	}

	return score, nil
}
