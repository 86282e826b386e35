package service

import (
	"path/filepath"
	"testing"
	"time"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func testToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// loggedInStore returns a session store holding user id 1.
func loggedInStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	err := store.Save(model.Session{
		User:  model.User{ID: 1, Username: "alice"},
		Token: testToken(t),
	})
	if err != nil {
		t.Fatalf("save session: %v", err)
	}
	return store
}

func emptyStore(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func testClient(baseURL string, store *session.Store) *api.Client {
	return api.NewClient(api.Options{BaseURL: baseURL, TokenSource: store})
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
