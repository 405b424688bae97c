package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"pfp3/internal/domain/entity"
)

// AvatarWriter owns the avatar pointer field. A single UpdateOne keeps the
// swap atomic with respect to concurrent reads of the same record.
type AvatarWriter struct {
	db *Database
}

func NewAvatarWriter(db *Database) *AvatarWriter {
	return &AvatarWriter{db: db}
}

func (w *AvatarWriter) SetAvatar(ctx context.Context, userID string, fileName *string) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	coll := w.db.Client.Database(w.db.DBName).Collection(UserCollection)

	result, err := coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"avatar_file_name": fileName}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return entity.ErrUserNotFound
	}

	return nil
}
