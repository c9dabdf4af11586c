package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// Session turns a presented session token into the user it belongs to.
type Session struct {
	codec     model.TokenCodec
	userStore model.UserStore
	logger    *logger.Logger
}

func NewSession(codec model.TokenCodec, userStore model.UserStore, logger *logger.Logger) *Session {
	return &Session{
		codec:     codec,
		userStore: userStore,
		logger:    logger,
	}
}

// Resolve verifies token and loads its subject. Every rejection is an
// unauthenticated APIError carrying the reason.
func (s *Session) Resolve(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, apierror.NewErrMissingCredentials()
	}

	claims, err := s.codec.Verify(token)
	if err != nil {
		s.logger.Debug("Session service: token rejected",
			"error", err.Error())
		return model.User{}, apierror.NewErrInvalidCredentials()
	}

	user, err := s.userStore.GetByEmail(ctx, claims.Subject)
	if errors.Is(err, model.ErrNotFound) {
		s.logger.Info("Session service: token subject has no user",
			"email", claims.Subject)
		return model.User{}, apierror.NewErrUnknownPrincipal()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.IsActive {
		s.logger.Info("Session service: inactive user presented a token",
			"user_id", user.ID)
		return model.User{}, apierror.NewErrInactivePrincipal()
	}

	return user, nil
}
