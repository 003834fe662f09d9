package storage

import (
	"context"
	"io"
)

// Provider abstracts the object store holding vehicle photos. Only the
// resulting URL is persisted on the vehicle record.
type Provider interface {
	Upload(ctx context.Context, req *UploadRequest) (*UploadResponse, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

type UploadRequest struct {
	Key         string
	Reader      io.Reader
	ContentType string
	Size        int64
}

type UploadResponse struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
