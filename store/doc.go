// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store reads and writes users and posts through database/sql.

# Ranking

TopUser and ListUsersByScore order by sustainability_score descending.
Equal scores are ordered by ascending id, so the same user always wins a tie.

# Score Updates

IncrementScore is a single UPDATE ... RETURNING statement. Two requests
crediting the same user both land; neither overwrites the other.

# Posts

CreatePost assigns the id and the timestamp (from the clock passed to New).
LatestPost and ListRecentPosts order by created_at descending.

RewardAndPost runs IncrementScore and CreatePost in one transaction:

	post, newScore, err := s.RewardAndPost(ctx, 10, models.NewPost{...})

Missing rows surface as ErrNotFound.
*/
package store
