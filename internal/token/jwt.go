package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

var _ model.TokenCodec = (*JWT)(nil)

// JWT implements TokenCodec backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// Option configures a JWT codec.
type Option func(*JWT)

// WithClock overrides the time source used for issuing and verifying.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a new JWT codec signing with secretKey; issued tokens are
// valid for ttl.
func NewJWT(secretKey string, ttl time.Duration, opts ...Option) *JWT {
	j := &JWT{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// TTL returns the validity window of issued tokens.
func (j *JWT) TTL() time.Duration {
	return j.ttl
}

// Issue creates a signed token for subject expiring after the configured TTL.
func (j *JWT) Issue(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("empty token subject")
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Verify checks structure, signature and expiry of tokenString in one step.
// Every failure wraps model.ErrInvalidToken.
func (j *JWT) Verify(tokenString string) (model.TokenClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrInvalidToken
	}
	if claims.Subject == "" {
		return model.TokenClaims{}, fmt.Errorf("%w: missing subject", model.ErrInvalidToken)
	}

	out := model.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}

	return out, nil
}
