package store

import (
	"context"
	"time"

	"riseup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoTokens struct {
	coll *mongo.Collection
}

func NewMongoTokens(coll *mongo.Collection) *MongoTokens {
	return &MongoTokens{coll: coll}
}

func (s *MongoTokens) Issue(ctx context.Context, uid, candidate string) (*models.Token, error) {
	// Upsert keyed by uid: $setOnInsert leaves an existing record untouched,
	// so the first login wins and later logins get the same token back.
	filter := bson.M{"uid": uid}
	update := bson.M{"$setOnInsert": bson.M{
		"uid":      uid,
		"token":    candidate,
		"expireAt": time.Now(),
	}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var token models.Token
	if err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (s *MongoTokens) Lookup(ctx context.Context, token string) (string, error) {
	var record models.Token
	err := s.coll.FindOne(ctx, bson.M{"token": token}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return record.UID, nil
}

func (s *MongoTokens) Revoke(ctx context.Context, token string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"token": token})
	return err
}
