package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
)

type UserRetriever struct {
	db *Database
}

func NewUserRetriever(db *Database) *UserRetriever {
	return &UserRetriever{db: db}
}

func (r *UserRetriever) GetByID(ctx context.Context, userID string) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	coll := r.db.Client.Database(r.db.DBName).Collection(UserCollection)

	var user model.User
	if err := coll.FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}
