package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	minioLib "github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI for testing without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr    error
	putBucket string
	putKey    string
	putSize   int64
	putOpts   minioLib.PutObjectOptions
	putBody   []byte
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minioLib.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, bucket string, key string, r io.Reader, size int64, opts minioLib.PutObjectOptions) (minioLib.UploadInfo, error) {
	if f.putErr != nil {
		return minioLib.UploadInfo{}, f.putErr
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return minioLib.UploadInfo{}, err
	}
	f.putBucket, f.putKey, f.putSize, f.putOpts, f.putBody = bucket, key, size, opts, body
	return minioLib.UploadInfo{Bucket: bucket, Key: key, Size: int64(len(body))}, nil
}

func TestNewClientWithAPI_BucketExists(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	c, err := NewClientWithAPI(ctx, api, "b")
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, "b", c.bucket)
	assert.Empty(t, api.madeBucket)
}

func TestNewClientWithAPI_CreateBucket(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: false}
	c, err := NewClientWithAPI(ctx, api, "lannaveg-images")
	require.NoError(t, err)
	assert.Equal(t, "lannaveg-images", c.bucket)
	assert.Equal(t, "lannaveg-images", api.madeBucket)
}

func TestNewClientWithAPI_Errors(t *testing.T) {
	tests := []struct {
		name string
		api  *fakeMinio
	}{
		{name: "bucket exists check fails", api: &fakeMinio{bucketExistsErr: errors.New("boom")}},
		{name: "make bucket fails", api: &fakeMinio{bucketExists: false, makeBucketErr: errors.New("fail")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClientWithAPI(context.Background(), tt.api, "bucket")
			assert.Nil(t, c)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to ensure bucket exists")
		})
	}
}

func TestClient_Put(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		err := c.Put(ctx, "predictions/2026/03/x", bytes.NewReader([]byte("data")), 4, "image/png")
		require.NoError(t, err)
		assert.Equal(t, "b", api.putBucket)
		assert.Equal(t, "predictions/2026/03/x", api.putKey)
		assert.Equal(t, int64(4), api.putSize)
		assert.Equal(t, "image/png", api.putOpts.ContentType)
		assert.Equal(t, []byte("data"), api.putBody)
	})

	t.Run("default content type", func(t *testing.T) {
		api := &fakeMinio{}
		c := &Client{api: api, bucket: "b"}
		require.NoError(t, c.Put(ctx, "k", bytes.NewReader(nil), 0, ""))
		assert.Equal(t, "application/octet-stream", api.putOpts.ContentType)
	})

	t.Run("empty key", func(t *testing.T) {
		c := &Client{api: &fakeMinio{}, bucket: "b"}
		assert.Error(t, c.Put(ctx, "", bytes.NewReader(nil), 0, ""))
	})

	t.Run("error", func(t *testing.T) {
		api := &fakeMinio{putErr: errors.New("put-fail")}
		c := &Client{api: api, bucket: "b"}
		err := c.Put(ctx, "k", bytes.NewReader([]byte("data")), 4, "image/jpeg")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upload object")
	})
}
