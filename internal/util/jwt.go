package util

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired decodes the bearer token without verifying its signature (the
// client never holds the backend secret) and reports whether its exp claim
// lies in the past. Tokens with no exp claim or an undecodable payload are
// treated as live; the server remains the authority and will answer 401.
func TokenExpired(tokenString string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
