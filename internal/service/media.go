package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vidtube/internal/storage"
)

// Upload is a file received from the client.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// Storage folders.
const (
	folderAvatars    = "avatars"
	folderCovers     = "covers"
	folderVideos     = "videos"
	folderThumbnails = "thumbnails"
)

// mediaStore uploads client files under random keys and removes them
// best-effort when the owning document goes away.
type mediaStore struct {
	store storage.Storage
	log   *zap.Logger
}

// put stores u under folder. kind is the required MIME top-level type,
// e.g. "image" or "video".
func (m *mediaStore) put(ctx context.Context, folder, kind, field string, u *Upload) (storage.ObjectInfo, error) {
	if u == nil || u.Reader == nil {
		return storage.ObjectInfo{}, invalid(field + " file is required")
	}
	if !strings.HasPrefix(u.ContentType, kind+"/") {
		return storage.ObjectInfo{}, invalid(fmt.Sprintf("%s must be a %s file", field, kind))
	}

	ext := strings.ToLower(path.Ext(u.Filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(u.ContentType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	key := path.Join(folder, uuid.NewString()+ext)

	info, err := m.store.Put(ctx, key, u.Reader, storage.PutObjectOptions{
		Size:        u.Size,
		ContentType: u.ContentType,
		Metadata:    map[string]string{"original-filename": u.Filename},
	})
	if err != nil {
		return storage.ObjectInfo{}, fmt.Errorf("upload to storage: %w", err)
	}
	if info.URL == "" {
		info.URL = m.store.URL(key)
	}
	info.Key = key
	return info, nil
}

// remove deletes keys, logging failures instead of returning them.
func (m *mediaStore) remove(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := m.store.Delete(ctx, key); err != nil {
			m.log.Warn("storage_delete_failed", zap.String("key", key), zap.Error(err))
		}
	}
}
