package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
	"pfp3/internal/domain/repository/blob"
	"pfp3/internal/domain/repository/broker"
	"pfp3/internal/domain/repository/directory"
	"pfp3/pkg/logger"
)

// Uploader orchestrates an avatar upload: validate, persist the new blob,
// swap the directory pointer, then clean up the superseded blob. The pointer
// swap is the commit point; everything after it is best-effort.
type Uploader struct {
	validator *Validator
	users     directory.Retriever
	pointers  directory.Writer
	blobs     blob.Writer
	remover   blob.Remover
	publisher broker.Publisher
}

func NewUploader(validator *Validator, users directory.Retriever, pointers directory.Writer,
	blobs blob.Writer, remover blob.Remover, publisher broker.Publisher,
) *Uploader {
	return &Uploader{
		validator: validator,
		users:     users,
		pointers:  pointers,
		blobs:     blobs,
		remover:   remover,
		publisher: publisher,
	}
}

func (u *Uploader) Upload(ctx context.Context, user *model.User, body io.Reader,
	fileName, mediaType string,
) (entity.UploadResult, error) {
	logger.Info("avatar upload attempt", "user", user.ID, "file", fileName)

	img, err := u.validator.Validate(body, fileName, mediaType)
	if err != nil {
		logger.Warn("avatar upload rejected", "user", user.ID, "file", fileName, "err", err)

		return entity.UploadResult{}, err
	}

	// Capture the pre-upload pointer before any write, so eviction below always
	// targets the state this upload superseded.
	current, err := u.users.GetByID(ctx, user.ID)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("lookup user %s: %w", user.ID, err)
	}
	oldFileName := current.AvatarFileName

	ref, err := u.blobs.Save(ctx, user.ID, img)
	if err != nil {
		return entity.UploadResult{}, fmt.Errorf("store avatar blob: %w", err)
	}

	if err := u.pointers.SetAvatar(ctx, user.ID, &ref.FileName); err != nil {
		// The new blob never became current; remove it so a failed upload
		// leaves no state behind.
		if rmErr := u.remover.Remove(ctx, ref.FileName); rmErr != nil {
			logger.Error("failed to remove blob after pointer update failed",
				"user", user.ID, "file", ref.FileName, "err", rmErr)
		}

		return entity.UploadResult{}, fmt.Errorf("update avatar pointer: %w", err)
	}

	u.evictSuperseded(ctx, user.ID, oldFileName)
	u.publishUpdate(ctx, user.ID, ref)

	logger.Info("avatar upload success", "user", user.ID, "saved_as", ref.FileName)

	return entity.UploadResult{
		UserID:    user.ID,
		FileName:  ref.FileName,
		AvatarURL: fmt.Sprintf("/users/%s/avatar", user.ID),
		Size:      ref.Size,
	}, nil
}

// evictSuperseded is a non-fatal cleanup step: the pointer has already moved,
// so failures here are logged and swallowed. The pointer is rechecked first so
// the blob the directory currently references is never deleted, even when two
// uploads for the same user race.
func (u *Uploader) evictSuperseded(ctx context.Context, userID string, fileName *string) {
	if fileName == nil {
		return
	}

	record, err := u.users.GetByID(ctx, userID)
	if err == nil && record.AvatarFileName != nil && *record.AvatarFileName == *fileName {
		logger.Warn("skipping eviction: blob is current again", "user", userID, "file", *fileName)

		return
	}

	if err := u.remover.Remove(ctx, *fileName); err != nil {
		logger.Error("non-fatal cleanup: failed to evict superseded avatar",
			"user", userID, "file", *fileName, "err", err)
	}
}

// publishUpdate notifies the broker that a user's avatar changed. The upload is
// already committed, so a publish failure is logged, never propagated.
func (u *Uploader) publishUpdate(ctx context.Context, userID string, ref entity.BlobRef) {
	if u.publisher == nil {
		return
	}

	payload, err := json.Marshal(map[string]any{
		"user_id":   userID,
		"file_name": ref.FileName,
		"size":      ref.Size,
	})
	if err != nil {
		return
	}

	if err := u.publisher.Publish(ctx, string(payload)); err != nil {
		logger.Error("failed to publish avatar update", "user", userID, "err", err)
	}
}
