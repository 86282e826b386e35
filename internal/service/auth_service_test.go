package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"foodieframe_client/internal/api"
	"foodieframe_client/internal/model"
	"foodieframe_client/internal/session"

	"github.com/gin-gonic/gin"
)

func TestLoginPersistsSession(t *testing.T) {
	token := testToken(t)
	router := newTestRouter()
	router.POST("/login", func(c *gin.Context) {
		var creds model.Credentials
		if err := c.BindJSON(&creds); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		if creds.Username != "alice" || creds.Password != "pw" {
			c.String(http.StatusUnauthorized, "bad credentials")
			return
		}
		c.JSON(http.StatusOK, model.Session{
			User:  model.User{ID: 1, Username: "alice"},
			Token: token,
		})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := emptyStore(t)
	svc := NewAuthService(testClient(srv.URL, store), store)

	sess, err := svc.Login(context.Background(), model.Credentials{Username: "alice", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.User.ID != 1 {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if store.Token() != token {
		t.Fatalf("login must persist the token")
	}

	svc.Logout()
	if store.Current() != nil {
		t.Fatalf("logout must drop the session")
	}
}

func TestRegisterDoesNotLogIn(t *testing.T) {
	router := newTestRouter()
	router.POST("/register", func(c *gin.Context) {
		c.JSON(http.StatusOK, model.User{ID: 5, Username: "carol"})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := emptyStore(t)
	svc := NewAuthService(testClient(srv.URL, store), store)

	user, err := svc.Register(context.Background(), model.User{Username: "carol", Email: "c@x.io", Password: "pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID != 5 {
		t.Fatalf("unexpected user: %+v", user)
	}
	if store.Current() != nil {
		t.Fatalf("registration must not create a session")
	}
}

// A 401 from any endpoint clears the stored session, so the next request
// goes out without the stale token.
func TestUnauthorizedClearsSession(t *testing.T) {
	var lastAuth string
	router := newTestRouter()
	router.GET("/posts", func(c *gin.Context) {
		lastAuth = c.GetHeader("Authorization")
		if lastAuth != "" {
			c.String(http.StatusUnauthorized, "token revoked")
			return
		}
		c.JSON(http.StatusOK, []model.Recipe{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	if err := store.Save(model.Session{
		User:  model.User{ID: 1, Username: "alice"},
		Token: testToken(t),
	}); err != nil {
		t.Fatalf("save session: %v", err)
	}

	client := api.NewClient(api.Options{
		BaseURL:        srv.URL,
		TokenSource:    store,
		OnUnauthorized: store.Clear,
	})

	_, err := client.Posts.List(context.Background())
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if store.Current() != nil {
		t.Fatalf("401 must clear the stored session")
	}

	// The follow-up request must not carry the revoked token.
	if _, err := client.Posts.List(context.Background()); err != nil {
		t.Fatalf("anonymous list: %v", err)
	}
	if lastAuth != "" {
		t.Fatalf("expected no Authorization header after the session was cleared, got %q", lastAuth)
	}
}
