// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates identifiers.

# Record IDs

Posts and users get random hex IDs:

	postID, err := ident.GenerateID(ident.PostIDBytes)

# Upload Filenames

Uploaded images are named with a random UUID and a fixed extension:

	name, err := ident.NewImageFilename() // "2f1c...5566.jpg"

IsImageFilename validates names taken from request paths before they touch
the filesystem.
*/
package ident
