package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"riseup/handlers"
	"riseup/models"
	"riseup/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type env struct {
	tokens   *fakeTokens
	users    *fakeUsers
	posts    *fakePosts
	identity *fakeIdentity
	media    *fakeMedia
	chat     *fakeChat
	router   *gin.Engine
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &env{
		tokens:   newFakeTokens(),
		users:    newFakeUsers(),
		identity: newFakeIdentity(),
		media:    &fakeMedia{},
		chat:     &fakeChat{reply: models.ChatTurn{Role: "assistant", Content: "stay the course"}},
	}
	e.posts = newFakePosts(e.users)

	h := handlers.New(e.tokens, e.users, e.posts, e.identity, e.media, e.chat)
	e.router = routes.SetupRouter(h, "")
	return e
}

func (e *env) seedUser(t *testing.T, id, name, email string, streak time.Time) *models.User {
	t.Helper()
	user := &models.User{
		ID:      id,
		Name:    name,
		Email:   email,
		PicPath: "https://cdn.test/profilepic/" + email,
		Streak:  streak,
	}
	require.NoError(t, e.users.Create(context.Background(), user))
	return user
}

func (e *env) seedToken(t *testing.T, uid, value string) {
	t.Helper()
	_, err := e.tokens.Issue(context.Background(), uid, value)
	require.NoError(t, err)
}

func (e *env) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func (e *env) doJSON(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	return e.do(method, path, token, bytes.NewReader(body), "application/json")
}

func multipartBody(t *testing.T, fields map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("picture", "picture.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("not-really-a-jpeg"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func decodeJSON(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out))
}
