package util

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func sign(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}

func TestTokenExpired(t *testing.T) {
	live := sign(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	if TokenExpired(live) {
		t.Fatalf("future exp must read as live")
	}

	stale := sign(t, jwt.MapClaims{"exp": time.Now().Add(-time.Minute).Unix()})
	if !TokenExpired(stale) {
		t.Fatalf("past exp must read as expired")
	}

	// No exp claim and garbage both defer to the server.
	if TokenExpired(sign(t, jwt.MapClaims{"sub": "alice"})) {
		t.Fatalf("missing exp must read as live")
	}
	if TokenExpired("not-a-jwt") {
		t.Fatalf("undecodable token must read as live")
	}
}
