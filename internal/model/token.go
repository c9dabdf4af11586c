package model

import "time"

// TokenClaims is the verified content of a session token.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenCodec issues and verifies signed, expiring session tokens.
type TokenCodec interface {
	Issue(subject string) (string, error)
	Verify(token string) (TokenClaims, error)
	TTL() time.Duration
}
