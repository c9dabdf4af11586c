package model

import (
	"context"
	"io"
)

// ImageStore archives uploaded images in object storage.
type ImageStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}
