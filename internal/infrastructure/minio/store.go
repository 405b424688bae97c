package minio

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"

	"pfp3/internal/domain/entity"
	"pfp3/pkg/utils"
)

// Store keeps avatar blobs as objects in a MinIO (or any S3-compatible)
// bucket. A single PutObject makes the full content visible atomically.
type Store struct {
	minioClient *minio.Client
	cfg         *StoreConfig
}

func NewStore(minioClient *minio.Client, cfg *StoreConfig) *Store {
	return &Store{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *Store) Save(ctx context.Context, userID string, img entity.ValidatedImage) (entity.BlobRef, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	fileName := utils.NewBlobName(userID, img.Extension)

	_, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, fileName,
		bytes.NewReader(img.Content), int64(len(img.Content)),
		minio.PutObjectOptions{ContentType: img.MediaType})
	if err != nil {
		return entity.BlobRef{}, err
	}

	return entity.BlobRef{
		FileName: fileName,
		Size:     int64(len(img.Content)),
	}, nil
}

func (s *Store) Open(ctx context.Context, fileName string) (io.ReadCloser, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	// Stat first: GetObject defers the request until the first read, which
	// would report a missing object too late to map it to ErrBlobMissing.
	info, err := s.minioClient.StatObject(ctx, s.cfg.Bucket, fileName, minio.StatObjectOptions{})
	if err != nil {
		if isNoSuchKey(err) {
			return nil, 0, entity.ErrBlobMissing
		}

		return nil, 0, err
	}

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, err
	}

	return obj, info.Size, nil
}

func (s *Store) Remove(ctx context.Context, fileName string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
	defer cancel()

	return s.minioClient.RemoveObject(ctx, s.cfg.Bucket, fileName, minio.RemoveObjectOptions{})
}

func isNoSuchKey(err error) bool {
	return minio.ToErrorResponse(err).Code == "NoSuchKey"
}
