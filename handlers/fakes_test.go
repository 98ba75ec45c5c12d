package handlers_test

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"riseup/models"
	"riseup/providers"
	"riseup/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo stores and the external providers. They
// implement the same contracts the handlers rely on, including the
// insert-if-absent token issue and the per-voter like flip.

type fakeTokens struct {
	byUID   map[string]*models.Token
	byValue map[string]string
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{
		byUID:   make(map[string]*models.Token),
		byValue: make(map[string]string),
	}
}

func (f *fakeTokens) Issue(_ context.Context, uid, candidate string) (*models.Token, error) {
	if existing, ok := f.byUID[uid]; ok {
		return existing, nil
	}
	token := &models.Token{UID: uid, Token: candidate, ExpireAt: time.Now()}
	f.byUID[uid] = token
	f.byValue[candidate] = uid
	return token, nil
}

func (f *fakeTokens) Lookup(_ context.Context, token string) (string, error) {
	uid, ok := f.byValue[token]
	if !ok {
		return "", store.ErrNotFound
	}
	return uid, nil
}

func (f *fakeTokens) Revoke(_ context.Context, token string) error {
	if uid, ok := f.byValue[token]; ok {
		delete(f.byUID, uid)
		delete(f.byValue, token)
	}
	return nil
}

type fakeUsers struct {
	byID map[string]*models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[string]*models.User)}
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return store.ErrConflict
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copied := *user
	f.byID[user.ID] = &copied
	return nil
}

func (f *fakeUsers) TouchStreak(_ context.Context, id string) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	user.Streak = time.Now()
	user.UpdatedAt = user.Streak
	copied := *user
	return &copied, nil
}

func (f *fakeUsers) RecordView(_ context.Context, viewerID, ownerID string) error {
	if viewerID == ownerID {
		return nil
	}
	if owner, ok := f.byID[ownerID]; ok {
		owner.ViewedProfile += 0.5
	}
	return nil
}

func (f *fakeUsers) Rank(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.byID))
	for _, user := range f.byID {
		users = append(users, *user)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Streak.Before(users[j].Streak)
	})
	return users, nil
}

type fakePosts struct {
	users *fakeUsers
	posts []*models.Post
}

func newFakePosts(users *fakeUsers) *fakePosts {
	return &fakePosts{users: users}
}

func (f *fakePosts) Publish(ctx context.Context, authorID, description, mediaURL string) (*models.Post, error) {
	author, err := f.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	post := &models.Post{
		ID:          primitive.NewObjectID(),
		UserID:      authorID,
		Name:        author.Name,
		Description: description,
		PostPath:    mediaURL,
		UserPath:    author.PicPath,
		Likes:       map[string]bool{},
		CreateAt:    time.Now(),
	}
	f.posts = append(f.posts, post)
	return post, nil
}

func (f *fakePosts) ListAll(_ context.Context) ([]models.Post, error) {
	ordered := make([]models.Post, 0, len(f.posts))
	for _, post := range f.posts {
		ordered = append(ordered, *post)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreateAt.After(ordered[j].CreateAt)
	})
	return ordered, nil
}

func (f *fakePosts) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	all, err := f.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var filtered []models.Post
	for _, post := range all {
		if post.UserID == authorID {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

func (f *fakePosts) ToggleLike(_ context.Context, postID, voterID string) (*models.Post, error) {
	for _, post := range f.posts {
		if post.ID.Hex() == postID {
			if post.Likes[voterID] {
				delete(post.Likes, voterID)
			} else {
				post.Likes[voterID] = true
			}
			copied := *post
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeIdentity struct {
	subjects map[string]string // email -> subject id
	tokens   map[string]int    // email -> sessions issued, for distinct token values
	failWith string
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{
		subjects: make(map[string]string),
		tokens:   make(map[string]int),
	}
}

func (f *fakeIdentity) session(email string) *providers.Credentials {
	f.tokens[email]++
	return &providers.Credentials{
		SubjectID:    f.subjects[email],
		Email:        email,
		SessionToken: fmt.Sprintf("session-%s-%d", email, f.tokens[email]),
	}
}

func (f *fakeIdentity) SignUp(_ context.Context, email, _ string) (*providers.Credentials, error) {
	if f.failWith != "" {
		return nil, &providers.ProviderError{Message: f.failWith}
	}
	if _, ok := f.subjects[email]; ok {
		return nil, &providers.ProviderError{Message: "EMAIL_EXISTS"}
	}
	f.subjects[email] = "subject-" + email
	return f.session(email), nil
}

func (f *fakeIdentity) SignIn(_ context.Context, email, _ string) (*providers.Credentials, error) {
	if f.failWith != "" {
		return nil, &providers.ProviderError{Message: f.failWith}
	}
	if _, ok := f.subjects[email]; !ok {
		return nil, &providers.ProviderError{Message: "EMAIL_NOT_FOUND"}
	}
	return f.session(email), nil
}

type fakeMedia struct {
	uploads []string
}

func (f *fakeMedia) Upload(_ context.Context, key string, _ io.Reader, _ int64, _ string) (string, error) {
	f.uploads = append(f.uploads, key)
	return "https://cdn.test/" + key, nil
}

type fakeChat struct {
	received []models.ChatTurn
	reply    models.ChatTurn
}

func (f *fakeChat) Complete(_ context.Context, turns []models.ChatTurn) (*models.ChatTurn, error) {
	f.received = turns
	reply := f.reply
	return &reply, nil
}
