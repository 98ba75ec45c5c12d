package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account record. The identity provider issues ID; Mongo's own
// _id is kept internal. Streak and ViewedProfile are the only fields mutated
// after creation.
type User struct {
	OID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       string             `bson:"id" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	PicPath  string             `bson:"picPath" json:"picPath"`
	Location string             `bson:"location" json:"location"`

	// Streak is the last explicit daily refresh; the leaderboard sorts on it.
	Streak time.Time `bson:"streak" json:"streak"`

	// ViewedProfile advances by 0.5 per non-owner fetch, hence the float.
	ViewedProfile float64 `bson:"viewedProfile" json:"viewedProfile"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
