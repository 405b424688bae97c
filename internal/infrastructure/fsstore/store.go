package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"pfp3/internal/domain/entity"
	"pfp3/pkg/utils"
)

// Store keeps avatar blobs as files in a single directory. A blob is written
// to a temp file in the same directory and renamed into place, so a concurrent
// reader sees either the full content or nothing.
type Store struct {
	dir string
}

func New(cfg *Config) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create avatar dir %q: %w", cfg.Dir, err)
	}

	return &Store{dir: cfg.Dir}, nil
}

func (s *Store) Save(_ context.Context, userID string, img entity.ValidatedImage) (entity.BlobRef, error) {
	fileName := utils.NewBlobName(userID, img.Extension)

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return entity.BlobRef{}, fmt.Errorf("create temp file: %w", err)
	}

	if err := writeAndRename(tmp, img.Content, filepath.Join(s.dir, fileName)); err != nil {
		_ = os.Remove(tmp.Name())

		return entity.BlobRef{}, err
	}

	return entity.BlobRef{
		FileName: fileName,
		Size:     int64(len(img.Content)),
	}, nil
}

func writeAndRename(tmp *os.File, content []byte, dst string) error {
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()

		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}

func (s *Store) Open(_ context.Context, fileName string) (io.ReadCloser, int64, error) {
	path, err := s.blobPath(fileName)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, entity.ErrBlobMissing
		}

		return nil, 0, fmt.Errorf("open blob %q: %w", fileName, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()

		return nil, 0, fmt.Errorf("stat blob %q: %w", fileName, err)
	}

	return f, info.Size(), nil
}

func (s *Store) Remove(_ context.Context, fileName string) error {
	path, err := s.blobPath(fileName)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove blob %q: %w", fileName, err)
	}

	return nil
}

// blobPath rejects names that would escape the store directory. Generated
// names never contain separators; anything else is treated as absent.
func (s *Store) blobPath(fileName string) (string, error) {
	if fileName == "" || fileName != filepath.Base(fileName) || strings.HasPrefix(fileName, ".") {
		return "", entity.ErrBlobMissing
	}

	return filepath.Join(s.dir, fileName), nil
}
