// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open selects a database/sql driver from the configured type:

  - sqlite: modernc.org/sqlite (default, also used by tests)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

All queries use $N placeholders, which every driver accepts.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: username, email, sustainability_score (never negative)
  - posts: image_url, filename, created_at, user_id

# Relationships

	users 1──* posts (weak: posts.user_id has no foreign key)

Deleting a user leaves its posts in place.

# Indexes

  - users.(sustainability_score DESC, id) for ranking
  - posts.created_at DESC for the latest post
  - posts.user_id
*/
package db
