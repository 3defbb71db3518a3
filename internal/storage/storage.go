// Package storage puts outfit photos and avatars into S3-compatible buckets.
// Uploads stream straight from the request body; nothing touches local disk.
package storage

import (
	"context"
	"io"
)

// PutObjectOptions describes an upload. Size is -1 when the length is unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the backend reports back after a successful Put.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// Storage is one bucket. Keys are flat; callers pick them.
type Storage interface {
	// Put overwrites any object already stored under key.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PublicURL is stable for the lifetime of the object; the bucket is public-read.
	PublicURL(key string) string
}
