// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreatePostRequest: image (Base64)

# Response Types

Types for JSON responses:

  - CreatePostResponse: message, post_id, user_id, image_url, filename,
    timestamp, new_user_score
  - ListPostsResponse: posts
  - UserSummary: id, username, email, sustainability_score
  - ErrorResponse: error

# Domain Types

  - User: a ranked user with a sustainability score
  - Post: an uploaded image credited to one user
  - NewUser, NewPost: insert parameters for the store

# Constants

	DefaultRewardPoints = 10
*/
package models
