// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Record ID lengths in bytes (hex encoded length is double)
const (
	PostIDBytes = 16
	UserIDBytes = 12
)

// ImageExt is the extension given to every stored upload.
// Uploads are not inspected, so the extension is fixed.
const ImageExt = ".jpg"

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewImageFilename returns a collision-resistant filename for an upload
func NewImageFilename() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("failed to generate filename: %w", err)
	}
	return id.String() + ImageExt, nil
}

// IsImageFilename reports whether name looks like a filename produced by
// NewImageFilename. It rejects anything containing a path separator.
func IsImageFilename(name string) bool {
	if name != filepath.Base(name) || !strings.HasSuffix(name, ImageExt) {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(name, ImageExt))
	return err == nil
}
