package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpired reports whether a stored access token has already expired,
// judged from its exp claim without verifying the signature. Verification
// belongs to the server; this check only saves a doomed round trip. Tokens
// that cannot be parsed or carry no exp claim are treated as not expired and
// left for the server to reject.
func TokenExpired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
