// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package imagestore writes uploaded images to a local directory and hands
// back a URL the static file server can resolve.
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/sustainify/server/ident"
)

var (
	ErrEmptyImage      = errors.New("image is empty")
	ErrInvalidFilename = errors.New("invalid image filename")
)

// Image is a reference to a stored upload
type Image struct {
	Filename string
	Path     string
	URL      string
}

type Store struct {
	dir       string
	urlPrefix string
}

func New(dir, urlPrefix string) *Store {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &Store{dir: dir, urlPrefix: urlPrefix}
}

// Save writes data under a freshly generated filename. The file only becomes
// visible under its final name once fully written.
func (s *Store) Save(ctx context.Context, data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrEmptyImage
	}
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	filename, err := ident.NewImageFilename()
	if err != nil {
		return Image{}, err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return Image{}, fmt.Errorf("failed to create upload dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return Image{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	// CreateTemp uses 0600; uploads are read by whatever serves the directory
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return Image{}, fmt.Errorf("failed to set image permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return Image{}, fmt.Errorf("failed to write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Image{}, fmt.Errorf("failed to write image: %w", err)
	}

	path := filepath.Join(s.dir, filename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return Image{}, fmt.Errorf("failed to store image: %w", err)
	}

	slog.Debug("image saved", "filename", filename, "size", humanize.Bytes(uint64(len(data))))

	return Image{
		Filename: filename,
		Path:     path,
		URL:      s.urlPrefix + filename,
	}, nil
}

// Remove deletes a stored image. Removing a missing file is not an error.
func (s *Store) Remove(filename string) error {
	if !ident.IsImageFilename(filename) {
		return ErrInvalidFilename
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
