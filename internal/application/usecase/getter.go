package usecase

import (
	"context"
	"errors"
	"path/filepath"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/repository/blob"
	"pfp3/internal/domain/repository/directory"
	"pfp3/pkg/logger"
	"pfp3/pkg/utils"
)

// Getter retrieves a user's current avatar: directory lookup, blob read,
// media type inferred from the stored extension.
type Getter struct {
	users directory.Retriever
	blobs blob.Reader
}

func NewGetter(users directory.Retriever, blobs blob.Reader) *Getter {
	return &Getter{
		users: users,
		blobs: blobs,
	}
}

func (g *Getter) Get(ctx context.Context, userID string) (*entity.Avatar, error) {
	user, err := g.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.AvatarFileName == nil {
		return nil, entity.ErrNoAvatarSet
	}
	fileName := *user.AvatarFileName

	mediaType, ok := utils.MediaTypeByExtension(filepath.Ext(fileName))
	if !ok {
		// Blob names are generated from the accepted-extension table, so an
		// unrecognized extension means directory/storage drift.
		logger.Error("avatar pointer references unrecognized extension", "user", userID, "file", fileName)

		return nil, entity.ErrBlobMissing
	}

	body, size, err := g.blobs.Open(ctx, fileName)
	if err != nil {
		if errors.Is(err, entity.ErrBlobMissing) {
			logger.Error("avatar pointer references missing blob", "user", userID, "file", fileName)
		}

		return nil, err
	}

	return &entity.Avatar{
		Body:      body,
		Size:      size,
		MediaType: mediaType,
		FileName:  fileName,
	}, nil
}
