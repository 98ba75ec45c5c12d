package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is a feed entry. Name and UserPath are copied from the author at
// publish time and never refreshed, so entries keep the name and picture the
// author had when they posted. Likes maps voter uid to true; a voter who has
// not liked the post is simply absent from the map.
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	PostPath    string             `bson:"postPath" json:"postPath"`
	UserPath    string             `bson:"userPath" json:"userPath"`
	Likes       map[string]bool    `bson:"likes" json:"likes"`
	CreateAt    time.Time          `bson:"createAt" json:"createAt"`
}
