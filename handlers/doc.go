// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Sustainify API.

# Handler Types

Each handler is a struct with its dependencies built from *sql.DB and Config:

  - UserHandler: ranked user listing and single-user lookup
  - PostHandler: post creation, latest post and recent posts

	postHandler := handlers.NewPostHandler(db, cfg)

# Post Creation

	POST /create_post  {"image": "<base64>"}

The image is decoded and written to the upload directory, the top-ranked
user is credited cfg.RewardPoints and a post referencing the image is
recorded. The score update and the post insert share a transaction; if
anything after the image write fails, the image is deleted again.

Failures map to 400 (missing or undecodable image), 404 (no users) and
500 (storage or database failure).

# Reads

	GET /             → ListUsers (score descending, [] when empty)
	GET /users/{id}   → GetUser (404 for an unknown id)
	GET /latest_post  → LatestPost (404 when there are no posts)
	GET /posts        → ListPosts (?limit=, newest first)
	GET /world        → World (static HTML)
*/
package handlers
