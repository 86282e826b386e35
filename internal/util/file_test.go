package util

import (
	"bytes"
	"testing"
)

func TestValidateMimeType(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	mimeType, err := ValidateMimeType(bytes.NewReader(png), []string{MimeImage, MimeVideo})
	if err != nil {
		t.Fatalf("png: %v", err)
	}
	if !IsImage(mimeType) {
		t.Fatalf("expected an image type, got %q", mimeType)
	}

	if _, err := ValidateMimeType(bytes.NewReader([]byte("plain text")), []string{MimeImage, MimeVideo}); err == nil {
		t.Fatalf("text must be rejected")
	}
}

func TestIsVideo(t *testing.T) {
	if !IsVideo("video/mp4") {
		t.Fatalf("video/mp4 is a video")
	}
	if !IsVideo("application/x-mpegURL") {
		t.Fatalf("HLS playlists count as video")
	}
	if IsVideo("image/png") {
		t.Fatalf("image/png is not a video")
	}
}
