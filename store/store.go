// Package store holds the persistence layer: bearer tokens, account records
// and the post feed, all backed by MongoDB collections.
package store

import (
	"context"
	"errors"

	"riseup/models"
)

var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("duplicate record")
)

// TokenStore persists opaque bearer tokens bound to an account uid (the
// account email). Expiry is handled by a TTL index; there is no renewal on
// use.
type TokenStore interface {
	// Issue persists candidate as the uid's token unless one already exists,
	// in which case the existing record is returned unchanged. The write is
	// an atomic insert-if-absent, so concurrent logins for the same account
	// converge on a single token.
	Issue(ctx context.Context, uid, candidate string) (*models.Token, error)
	// Lookup resolves a token value to its owning uid.
	Lookup(ctx context.Context, token string) (string, error)
	// Revoke deletes the record; revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// UserStore is the account directory plus its leaderboard projection.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// Create fails with ErrConflict when the email is already registered.
	Create(ctx context.Context, user *models.User) error
	// TouchStreak overwrites the streak timestamp with the current time and
	// returns the updated record.
	TouchStreak(ctx context.Context, id string) (*models.User, error)
	// RecordView adds 0.5 to the owner's profile-view counter unless the
	// viewer is the owner. Repeat views are not deduplicated.
	RecordView(ctx context.Context, viewerID, ownerID string) error
	// Rank returns every account ordered by streak timestamp ascending.
	Rank(ctx context.Context) ([]models.User, error)
}

// PostStore is the feed: reverse-chronological posts with per-voter like sets.
type PostStore interface {
	// Publish creates a post snapshotting the author's current name and
	// profile picture. Fails with ErrNotFound for an unknown author.
	Publish(ctx context.Context, authorID, description, mediaURL string) (*models.Post, error)
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	// ToggleLike flips the voter's membership in the post's like set and
	// returns the post as updated. Applying it twice restores the original
	// set.
	ToggleLike(ctx context.Context, postID, voterID string) (*models.Post, error)
}
