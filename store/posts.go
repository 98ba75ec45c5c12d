package store

import (
	"context"
	"time"

	"riseup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPosts struct {
	posts *mongo.Collection
	users *mongo.Collection
}

func NewMongoPosts(posts, users *mongo.Collection) *MongoPosts {
	return &MongoPosts{posts: posts, users: users}
}

func (s *MongoPosts) Publish(ctx context.Context, authorID, description, mediaURL string) (*models.Post, error) {
	var author models.User
	err := s.users.FindOne(ctx, bson.M{"id": authorID}).Decode(&author)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	post := models.Post{
		ID:          primitive.NewObjectID(),
		UserID:      authorID,
		Name:        author.Name,
		Description: description,
		PostPath:    mediaURL,
		UserPath:    author.PicPath,
		Likes:       map[string]bool{},
		CreateAt:    time.Now(),
	}

	if _, err := s.posts.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *MongoPosts) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.list(ctx, bson.M{})
}

func (s *MongoPosts) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return s.list(ctx, bson.M{"userId": authorID})
}

func (s *MongoPosts) list(ctx context.Context, filter bson.M) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createAt", Value: -1}})
	cursor, err := s.posts.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *MongoPosts) ToggleLike(ctx context.Context, postID, voterID string) (*models.Post, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.Post
	err = s.posts.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Flip only the voter's own key. Writing the single map entry instead of
	// the whole set keeps concurrent toggles by other voters intact.
	var update bson.M
	if post.Likes[voterID] {
		update = bson.M{"$unset": bson.M{"likes." + voterID: ""}}
	} else {
		update = bson.M{"$set": bson.M{"likes." + voterID: true}}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Post
	err = s.posts.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if updated.Likes == nil {
		updated.Likes = map[string]bool{}
	}
	return &updated, nil
}
