package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo is the active database handle, set by ConnectMongoDB.
var Mongo *mongo.Database

// ConnectMongoDB initializes the database connection
func ConnectMongoDB(uri, dbName string) *mongo.Database {
	clientOptions := options.Client().ApplyURI(uri)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal().Err(err).Msg("MongoDB connection failed")
	}

	// Ping the database to verify connection
	if err = client.Ping(ctx, nil); err != nil {
		log.Fatal().Err(err).Msg("MongoDB ping failed")
	}

	log.Info().Str("db", dbName).Msg("connected to MongoDB")
	Mongo = client.Database(dbName)
	return Mongo
}

// GetCollection returns a MongoDB collection
func GetCollection(name string) *mongo.Collection {
	return Mongo.Collection(name)
}

// EnsureIndexes creates the indexes the application depends on. The unique
// compound index on votes is what serializes duplicate vote submissions.
func EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		"users": {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"votes": {{
			Keys:    bson.D{{Key: "nomination_id", Value: 1}, {Key: "voter_email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"award_categories": {{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"certificates": {{
			Keys:    bson.D{{Key: "certificate_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"newsletter": {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		"nominations": {{
			Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "status", Value: 1}},
		}},
	}

	for collection, models := range indexes {
		if _, err := GetCollection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
