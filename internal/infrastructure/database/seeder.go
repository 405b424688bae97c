package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pfp3/internal/domain/model"
)

// UserSeeder provisions the directory with the configured users. $setOnInsert
// keeps an existing record's avatar pointer intact across restarts.
type UserSeeder struct {
	db *Database
}

func NewUserSeeder(db *Database) *UserSeeder {
	return &UserSeeder{db: db}
}

func (s *UserSeeder) Seed(ctx context.Context, users []model.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.db.QueryTimeout)
	defer cancel()

	coll := s.db.Client.Database(s.db.DBName).Collection(UserCollection)

	for _, user := range users {
		_, err := coll.UpdateOne(ctx,
			bson.M{"_id": user.ID},
			bson.M{"$setOnInsert": bson.M{
				"username":         user.Username,
				"avatar_file_name": nil,
			}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}
	}

	return nil
}
