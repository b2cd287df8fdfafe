// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Sustainify API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

	GET  /health                    - Liveness check
	GET  /                          - Users ranked by sustainability score
	GET  /users/{id}                - One user's score
	POST /create_post               - Upload an image, credit the top user
	GET  /latest_post               - Most recent post
	GET  /posts?limit=N             - Recent posts, newest first
	GET  /world                     - Static HTML greeting
	GET  /static/uploads/{filename} - Uploaded images

The uploads prefix follows cfg.UploadURLPrefix. Only names the server
generated are served; anything else in the directory is a 404.

Request bodies for POST /create_post are capped at cfg.MaxUploadBytes.

# Middleware

Every API handler is wrapped with middleware.WithLogging. CORS is applied
around the whole mux in main.
*/
package router
