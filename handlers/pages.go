// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import "net/http"

const worldHTML = "<p>Hello, World!</p>"

// World handles GET /world
func World(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(worldHTML))
}
