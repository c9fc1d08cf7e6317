package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube/internal/config"
)

func TestValidateConfig(t *testing.T) {
	valid := config.MinIOConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "media",
		PublicURL: "http://localhost:9000",
	}

	tests := []struct {
		name    string
		mutate  func(c *config.MinIOConfig)
		wantErr string
	}{
		{"valid", func(c *config.MinIOConfig) {}, ""},
		{"missing endpoint", func(c *config.MinIOConfig) { c.Endpoint = "" }, "endpoint"},
		{"missing secret", func(c *config.MinIOConfig) { c.SecretKey = "" }, "credentials"},
		{"missing bucket", func(c *config.MinIOConfig) { c.Bucket = "" }, "bucket"},
		{"bad public url", func(c *config.MinIOConfig) { c.PublicURL = "http://[::1" }, "public url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewMinIO_RejectsInvalidConfig(t *testing.T) {
	_, err := NewMinIO(config.MinIOConfig{})
	assert.Error(t, err)
}

func TestObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/media/avatars/a.png", objectURL("https://cdn.example.com/", "media", "/avatars/a.png"))
	assert.Equal(t, "http://minio:9000/media/videos/v.mp4", objectURL("http://minio:9000", "media", "videos/v.mp4"))
}
