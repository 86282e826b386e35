package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"foodieframe_client/internal/model"

	"github.com/gin-gonic/gin"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func writeTempPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dish.png")
	if err := os.WriteFile(path, pngHeader, 0644); err != nil {
		t.Fatalf("write png: %v", err)
	}
	return path
}

func TestRecipeUploadMultipart(t *testing.T) {
	var form map[string]string
	var fileField string
	router := newTestRouter()
	router.POST("/posts/upload", func(c *gin.Context) {
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		form = map[string]string{}
		for key, values := range c.Request.MultipartForm.Value {
			form[key] = values[0]
		}
		for key := range c.Request.MultipartForm.File {
			fileField = key
		}
		c.JSON(http.StatusOK, model.Recipe{ID: 9, Title: form["title"]})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	created, err := client.Posts.Upload(context.Background(), model.Recipe{
		UserID:      4,
		Title:       "Pad Thai",
		Description: "Street-style noodles",
		Category:    "Thai",
		Steps:       "soak\nfry",
		Tags:        "noodles,thai",
	}, writeTempPNG(t), "")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if created.ID != 9 {
		t.Fatalf("expected created id 9, got %d", created.ID)
	}

	// The recipe upload endpoint expects the capitalized userID field.
	if form["userID"] != "4" {
		t.Fatalf("expected userID=4, got form %v", form)
	}
	if _, ok := form["userId"]; ok {
		t.Fatalf("userId must not be sent on recipe uploads")
	}
	if form["title"] != "Pad Thai" || form["tags"] != "noodles,thai" {
		t.Fatalf("unexpected form fields: %v", form)
	}
	if fileField != "imageFile" {
		t.Fatalf("expected imageFile part, got %q", fileField)
	}
}

func TestEventUploadMultipart(t *testing.T) {
	var form map[string]string
	router := newTestRouter()
	router.POST("/events/upload", func(c *gin.Context) {
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
		form = map[string]string{}
		for key, values := range c.Request.MultipartForm.Value {
			form[key] = values[0]
		}
		c.JSON(http.StatusOK, model.Event{ID: 3})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.Events.Upload(context.Background(), model.Event{
		UserID:      7,
		Title:       "Potluck evening",
		Description: "Bring a dish to share",
		Date:        "2026-10-01",
		Time:        "18:00:00",
		Location:    "Community hall",
	}, writeTempPNG(t))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	// Event uploads use the lower-case userId field.
	if form["userId"] != "7" {
		t.Fatalf("expected userId=7, got form %v", form)
	}
	if _, ok := form["userID"]; ok {
		t.Fatalf("userID must not be sent on event uploads")
	}
}

func TestUploadRejectsNonMediaLocally(t *testing.T) {
	requests := 0
	router := newTestRouter()
	router.POST("/posts/upload", func(c *gin.Context) {
		requests++
		c.JSON(http.StatusOK, model.Recipe{})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just text"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.Posts.Upload(context.Background(), model.Recipe{Title: "x"}, path, "")
	if err == nil {
		t.Fatalf("expected a mime rejection")
	}
	if requests != 0 {
		t.Fatalf("rejection must happen before any request, saw %d", requests)
	}
}

func TestUploadUsesUploadBaseURL(t *testing.T) {
	jsonHost := newTestRouter()
	srvJSON := httptest.NewServer(jsonHost)
	defer srvJSON.Close()

	uploadHits := 0
	uploadHost := newTestRouter()
	uploadHost.POST("/posts/upload", func(c *gin.Context) {
		uploadHits++
		c.JSON(http.StatusOK, model.Recipe{ID: 1})
	})
	srvUpload := httptest.NewServer(uploadHost)
	defer srvUpload.Close()

	client := NewClient(Options{BaseURL: srvJSON.URL, UploadBaseURL: srvUpload.URL})
	if _, err := client.Posts.Upload(context.Background(), model.Recipe{Title: "x"}, writeTempPNG(t), ""); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if uploadHits != 1 {
		t.Fatalf("expected the upload host to be hit once, got %d", uploadHits)
	}
}
