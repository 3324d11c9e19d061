package database

import (
	"context"
	"time"

	"qa-forum-backend/internal/config"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func Connect(cfg *config.Config) *mongo.Database {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("database unreachable")
	}

	log.Info().Str("db", cfg.MongoDB).Msg("database connected")
	return client.Database(cfg.MongoDB)
}

// EnsureIndexes builds the unique indexes backing the email and phone
// uniqueness invariants. Phone is sparse: users without a phone must
// not collide with each other.
func EnsureIndexes(db *mongo.Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build user indexes")
	}

	_, err = db.Collection("answers").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "questionId", Value: 1}, {Key: "createdAt", Value: -1}}},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build answer indexes")
	}

	log.Info().Msg("indexes ensured")
}
