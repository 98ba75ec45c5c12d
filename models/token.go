package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Token is an opaque bearer credential bound to the owning account's uid
// (the account email). Records are reaped by a Mongo TTL index one hour
// after ExpireAt; there is no renewal on use.
type Token struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UID      string             `bson:"uid" json:"uid"`
	Token    string             `bson:"token" json:"token"`
	ExpireAt time.Time          `bson:"expireAt" json:"expireAt"`
}
