// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Sustainify API server.

Sustainify is a sustainability leaderboard. Users hold a sustainability
score; every uploaded photo is stored as a post and credits the current
top-ranked user with a fixed number of points.

# Starting the Server

	DATABASE_URL=sustainify.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres (lib/pq) or pgx (default: sqlite)
  - CREDENTIALS_FILE (--credentials): dotenv file supplying DATABASE_URL/DATABASE_TYPE
  - UPLOAD_DIR (--upload-dir): image directory (default: static/uploads)
  - UPLOAD_URL_PREFIX (--upload-url): public image prefix (default: /static/uploads/)
  - MAX_UPLOAD_SIZE (--max-upload): request body cap, e.g. "10 MB"
  - REWARD_POINTS (--reward): points per post (default: 10)
  - LOG_LEVEL=debug (-v): debug logging

# Architecture

  - handlers: HTTP request handlers (users, posts, pages)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, error rendering
  - posting: the create-post workflow
  - store: SQL queries for users and posts
  - imagestore: image files on disk
  - apperr: error kinds shared by the layers above
  - models: Request/response and domain types
  - ident: ID and filename generation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

Demo users can be loaded with cmd/seed.
*/
package main
