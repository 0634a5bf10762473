// Package blobstore stores uploaded media by path and derives public URLs
// from the path alone.
package blobstore

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

var (
	ErrNotFound    = errors.New("blob not found")
	ErrInvalidPath = errors.New("invalid blob path")
)

// Object is a stored blob.
type Object struct {
	Data        []byte
	ContentType string
}

// Store is the object storage used by the upload proxy.
type Store interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	Get(ctx context.Context, path string) (*Object, error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}

// CleanPath trims slashes and rejects empty or dot segments so a path can
// never climb out of its prefix.
func CleanPath(p string) (string, error) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", ErrInvalidPath
		}
	}
	return p, nil
}

// JoinURL appends the escaped path to base, keeping "/" separators.
func JoinURL(base, path string) string {
	parts := strings.Split(path, "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return strings.TrimRight(base, "/") + "/" + strings.Join(parts, "/")
}
