package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"brilliantstylist/internal/config"
)

func TestPublicBaseURL(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{"explicit base", config.MinIOConfig{Endpoint: "minio:9000", PublicBaseURL: "https://cdn.example.com/"}, "https://cdn.example.com"},
		{"plain endpoint", config.MinIOConfig{Endpoint: "localhost:9000"}, "http://localhost:9000"},
		{"ssl endpoint", config.MinIOConfig{Endpoint: "s3.example.com", UseSSL: true}, "https://s3.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, publicBaseURL(tt.cfg))
		})
	}
}

func TestPublicURL(t *testing.T) {
	s := &minioStorage{bucket: "outfit-images", baseURL: "http://localhost:9000"}
	assert.Equal(t, "http://localhost:9000/outfit-images/u1-1700000000000-look.jpg", s.PublicURL("u1-1700000000000-look.jpg"))
	assert.Equal(t, "http://localhost:9000/outfit-images/u1-my%20look.jpg", s.PublicURL("u1-my look.jpg"))
}

func TestReadOnlyPolicy(t *testing.T) {
	p := readOnlyPolicy("avatars")
	assert.Contains(t, p, `"arn:aws:s3:::avatars/*"`)
	assert.Contains(t, p, `"s3:GetObject"`)
}

func TestNewMinIO_Validation(t *testing.T) {
	ctx := context.Background()
	_, err := NewMinIO(ctx, config.MinIOConfig{}, "b")
	assert.EqualError(t, err, "minio endpoint is required")

	_, err = NewMinIO(ctx, config.MinIOConfig{Endpoint: "localhost:9000"}, "b")
	assert.EqualError(t, err, "minio credentials are required")

	_, err = NewMinIO(ctx, config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "s"}, "")
	assert.EqualError(t, err, "minio bucket is required")
}
