package providers

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// LocalIdentity is the fallback provider used when no Firebase API key is
// configured: password hashes live in a Mongo collection and the session
// credential is a signed JWT. The rest of the system treats the token as
// opaque either way.
type LocalIdentity struct {
	coll   *mongo.Collection
	secret []byte
	ttl    time.Duration
}

type localCredential struct {
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
	SubjectID    string `bson:"subjectId"`
}

func NewLocalIdentity(coll *mongo.Collection, secret string, ttl time.Duration) *LocalIdentity {
	return &LocalIdentity{coll: coll, secret: []byte(secret), ttl: ttl}
}

func (l *LocalIdentity) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	cred := localCredential{
		Email:        email,
		PasswordHash: string(hash),
		SubjectID:    uuid.NewString(),
	}

	if _, err := l.coll.InsertOne(ctx, cred); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, &ProviderError{Message: "EMAIL_EXISTS"}
		}
		return nil, err
	}

	return l.session(cred)
}

func (l *LocalIdentity) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	var cred localCredential
	err := l.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cred)
	if err == mongo.ErrNoDocuments {
		return nil, &ProviderError{Message: "EMAIL_NOT_FOUND"}
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, &ProviderError{Message: "INVALID_PASSWORD"}
	}

	return l.session(cred)
}

func (l *LocalIdentity) session(cred localCredential) (*Credentials, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   cred.SubjectID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(l.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(l.secret)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		SubjectID:    cred.SubjectID,
		Email:        cred.Email,
		SessionToken: signed,
	}, nil
}
