package database

import (
	"context"
	"log"
	"time"

	"riseup/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Client *mongo.Client
var Tokens *mongo.Collection
var Users *mongo.Collection
var Posts *mongo.Collection
var Credentials *mongo.Collection

func ConnectMongo(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return err
	}

	if err := Client.Ping(ctx, nil); err != nil {
		return err
	}

	db := Client.Database(cfg.Mongo.DB)
	Tokens = db.Collection("tokens")
	Users = db.Collection("users")
	Posts = db.Collection("posts")
	Credentials = db.Collection("credentials")

	if err := ensureIndexes(ctx, cfg.TokenTTL); err != nil {
		return err
	}

	log.Println("Connected to MongoDB successfully")
	return nil
}

// ensureIndexes sets up the 1h TTL reap on tokens, one live token per uid,
// and the unique email constraint backing account creation.
func ensureIndexes(ctx context.Context, tokenTTL time.Duration) error {
	_, err := Tokens.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expireAt", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(int32(tokenTTL.Seconds())),
		},
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "token", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = Users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "id", Value: 1}},
		},
	})
	if err != nil {
		return err
	}

	_, err = Credentials.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func DisconnectMongo() error {
	if Client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
