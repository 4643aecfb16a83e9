package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/papertalk/papertalk/internal/common"
)

type MinioStore struct {
	client *minio.Client
	bucket string
	logger *slog.Logger
}

func NewMinioStore(ctx context.Context, cfg common.StorageConfig, logger *slog.Logger) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	s := &MinioStore{
		client: client,
		bucket: cfg.Bucket,
		logger: logger,
	}
	s.ensureBucket(ctx)
	return s, nil
}

// ensureBucket creates the bucket if missing. Best effort: a failure is
// logged and surfaced later by the first real operation.
func (s *MinioStore) ensureBucket(ctx context.Context) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Warn("failed to check bucket", "bucket", s.bucket, "error", err)
		return
	}
	if exists {
		return
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		s.logger.Warn("failed to create bucket", "bucket", s.bucket, "error", err)
		return
	}
	s.logger.Info("created bucket", "bucket", s.bucket)
}

func (s *MinioStore) Fetch(ctx context.Context, ref string) ([]byte, string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("get object %s: %w", ref, err)
	}
	defer func() {
		if cerr := obj.Close(); cerr != nil {
			s.logger.Warn("object close error", "ref", ref, "error", cerr)
		}
	}()

	info, err := obj.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("stat object %s: %w", ref, err)
	}
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", fmt.Errorf("read object %s: %w", ref, err)
	}
	return data, info.ContentType, nil
}

func (s *MinioStore) Put(ctx context.Context, ref string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, ref, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", ref, err)
	}
	s.logger.Debug("stored object", "ref", ref, "bytes", len(data), "content_type", contentType)
	return ref, nil
}
