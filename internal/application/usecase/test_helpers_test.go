package usecase

import (
	"bytes"
	"context"
	"io"
	"sync"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
	"pfp3/pkg/utils"
)

type memDirectory struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemDirectory(users ...model.User) *memDirectory {
	d := &memDirectory{users: make(map[string]*model.User)}
	for _, u := range users {
		u := u
		d.users[u.ID] = &u
	}

	return d
}

func (d *memDirectory) GetByID(_ context.Context, userID string) (*model.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[userID]
	if !ok {
		return nil, entity.ErrUserNotFound
	}

	clone := *user
	if user.AvatarFileName != nil {
		name := *user.AvatarFileName
		clone.AvatarFileName = &name
	}

	return &clone, nil
}

func (d *memDirectory) SetAvatar(_ context.Context, userID string, fileName *string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	user, ok := d.users[userID]
	if !ok {
		return entity.ErrUserNotFound
	}

	if fileName == nil {
		user.AvatarFileName = nil

		return nil
	}

	name := *fileName
	user.AvatarFileName = &name

	return nil
}

type failingPointerWriter struct {
	err error
}

func (w *failingPointerWriter) SetAvatar(context.Context, string, *string) error {
	return w.err
}

type memBlobStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func (s *memBlobStore) Save(_ context.Context, userID string, img entity.ValidatedImage) (entity.BlobRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := utils.NewBlobName(userID, img.Extension)
	s.blobs[name] = append([]byte(nil), img.Content...)

	return entity.BlobRef{FileName: name, Size: int64(len(img.Content))}, nil
}

func (s *memBlobStore) Open(_ context.Context, fileName string) (io.ReadCloser, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, ok := s.blobs[fileName]
	if !ok {
		return nil, 0, entity.ErrBlobMissing
	}

	return io.NopCloser(bytes.NewReader(content)), int64(len(content)), nil
}

func (s *memBlobStore) Remove(_ context.Context, fileName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, fileName)

	return nil
}

func (s *memBlobStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.blobs)
}

func (s *memBlobStore) has(fileName string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.blobs[fileName]

	return ok
}

type memPublisher struct {
	mu       sync.Mutex
	messages []string
}

func (p *memPublisher) Publish(_ context.Context, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = append(p.messages, message)

	return nil
}

func (p *memPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.messages)
}
