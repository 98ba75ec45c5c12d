package store

import (
	"context"
	"time"

	"riseup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUsers struct {
	coll *mongo.Collection
}

func NewMongoUsers(coll *mongo.Collection) *MongoUsers {
	return &MongoUsers{coll: coll}
}

func (s *MongoUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUsers) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.coll.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrConflict
	}
	return err
}

func (s *MongoUsers) TouchStreak(ctx context.Context, id string) (*models.User, error) {
	now := time.Now()
	update := bson.M{"$set": bson.M{"streak": now, "updatedAt": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *MongoUsers) RecordView(ctx context.Context, viewerID, ownerID string) error {
	if viewerID == ownerID {
		return nil
	}
	// $inc is atomic server-side, so concurrent visitors cannot lose
	// increments. The half-unit step matches the observed behavior.
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"id": ownerID},
		bson.M{"$inc": bson.M{"viewedProfile": 0.5}},
	)
	return err
}

func (s *MongoUsers) Rank(ctx context.Context) ([]models.User, error) {
	// Ascending by streak, oldest first.
	findOptions := options.Find().SetSort(bson.D{{Key: "streak", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
