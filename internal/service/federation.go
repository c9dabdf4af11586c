package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

const stateBytes = 32

// Federation signs users in through an external identity provider using the
// authorization-code flow.
type Federation struct {
	provider  model.IdentityProvider
	userStore model.UserStore
	codec     model.TokenCodec
	logger    *logger.Logger
}

func NewFederation(
	provider model.IdentityProvider,
	userStore model.UserStore,
	codec model.TokenCodec,
	logger *logger.Logger,
) *Federation {
	return &Federation{
		provider:  provider,
		userStore: userStore,
		codec:     codec,
		logger:    logger,
	}
}

// Initiate returns the provider URL to redirect the browser to and the state
// value the caller must bind to the browser.
func (f *Federation) Initiate() (authURL string, state string, err error) {
	state, err = newState()
	if err != nil {
		return "", "", fmt.Errorf("failed to generate state: %w", err)
	}

	return f.provider.AuthCodeURL(state), state, nil
}

// Complete exchanges code, finds or creates the local user and issues a
// session token for it.
func (f *Federation) Complete(ctx context.Context, code string) (model.SessionResult, error) {
	if code == "" {
		return model.SessionResult{}, apierror.NewErrFederationFailed("missing authorization code")
	}

	identity, err := f.provider.Exchange(ctx, code)
	if err != nil {
		f.logger.Warn("Federation service: code exchange failed",
			"error", err.Error())
		return model.SessionResult{}, apierror.NewErrFederationFailed("identity provider rejected the authorization code")
	}

	if identity.Email == "" || !identity.EmailVerified {
		f.logger.Warn("Federation service: identity without verified email",
			"subject", identity.Subject)
		return model.SessionResult{}, apierror.NewErrFederationFailed("identity provider did not return a verified email")
	}

	user, err := f.findOrCreate(ctx, identity)
	if err != nil {
		f.logger.Error("Federation service: failed to provision user",
			"email", identity.Email,
			"error", err.Error())
		return model.SessionResult{}, err
	}

	token, err := f.codec.Issue(user.Email)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	f.logger.Info("Federation service: user signed in",
		"user_id", user.ID)

	return model.SessionResult{User: user, Token: token}, nil
}

func (f *Federation) findOrCreate(ctx context.Context, identity model.ExternalIdentity) (model.User, error) {
	user, err := f.userStore.GetByEmail(ctx, identity.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	newUser := model.User{
		Email:    identity.Email,
		Role:     model.RoleUser,
		IsActive: true,
	}
	if identity.Name != "" {
		name := identity.Name
		newUser.FullName = &name
	}
	if identity.Subject != "" {
		sub := identity.Subject
		newUser.GoogleID = &sub
	}

	created, err := f.userStore.Create(ctx, newUser)
	if errors.Is(err, model.ErrAlreadyExists) {
		// a concurrent first sign-in inserted the row
		user, err = f.userStore.GetByEmail(ctx, identity.Email)
		if err != nil {
			return model.User{}, fmt.Errorf("failed to get user by email after conflict: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	f.logger.Info("Federation service: user created",
		"user_id", created.ID,
		"email", created.Email)

	return created, nil
}

func newState() (string, error) {
	b := make([]byte, stateBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
