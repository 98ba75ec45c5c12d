// Package providers holds the narrow clients for the external services the
// core calls: identity verification, media storage and chat completion. The
// handlers only ever see the interfaces.
package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Credentials is what a successful identity check yields: the provider's
// subject identifier and a session credential the caller may store as a
// bearer token.
type Credentials struct {
	SubjectID    string
	Email        string
	SessionToken string
}

// ProviderError carries an upstream provider's own message, relayed to the
// client verbatim with a 400.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string { return e.Message }

// Identity verifies account credentials against an external provider.
type Identity interface {
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
	SignUp(ctx context.Context, email, password string) (*Credentials, error)
}

const identityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

// FirebaseIdentity talks to the Identity Toolkit REST API.
type FirebaseIdentity struct {
	apiKey string
	client *http.Client
}

func NewFirebaseIdentity(apiKey string) *FirebaseIdentity {
	return &FirebaseIdentity{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type firebaseAuthRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type firebaseAuthResponse struct {
	IDToken string `json:"idToken"`
	Email   string `json:"email"`
	LocalID string `json:"localId"`
}

type firebaseErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (f *FirebaseIdentity) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	return f.call(ctx, "accounts:signInWithPassword", email, password)
}

func (f *FirebaseIdentity) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	return f.call(ctx, "accounts:signUp", email, password)
}

func (f *FirebaseIdentity) call(ctx context.Context, endpoint, email, password string) (*Credentials, error) {
	body, err := json.Marshal(firebaseAuthRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", identityToolkitURL, endpoint, f.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure firebaseErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
			return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode)
		}
		return nil, &ProviderError{Message: failure.Error.Message}
	}

	var success firebaseAuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return nil, err
	}

	return &Credentials{
		SubjectID:    success.LocalID,
		Email:        success.Email,
		SessionToken: success.IDToken,
	}, nil
}
