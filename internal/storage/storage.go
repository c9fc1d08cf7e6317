// Package storage holds uploaded media (avatars, cover images, videos,
// thumbnails) in an S3-compatible object store. Uploads are streamed; no
// local disk is used.
package storage

import (
	"context"
	"io"
)

// PutObjectOptions describe an upload. Size is the exact byte count, or -1
// when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is what the store reports back after an upload.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
	// URL is the public address clients use to fetch the object.
	URL string
}

// Storage is the media object store used by the services.
type Storage interface {
	// Put uploads an object under key from r.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Delete removes an object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public address of key.
	URL(key string) string
}
