package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes = 72
)

// Auth manages local email and password accounts.
type Auth struct {
	userStore model.UserStore
	codec     model.TokenCodec
	hashCost  int
	logger    *logger.Logger
}

func NewAuth(userStore model.UserStore, codec model.TokenCodec, logger *logger.Logger) *Auth {
	return &Auth{
		userStore: userStore,
		codec:     codec,
		hashCost:  bcrypt.DefaultCost,
		logger:    logger,
	}
}

// Register creates a local account.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	email, err := normalizeEmail(params.Email)
	if err != nil {
		return model.User{}, apierror.NewErrInvalidRequest("invalid email address")
	}
	if len(params.Password) < MinPasswordLength {
		return model.User{}, apierror.NewErrInvalidRequest(fmt.Sprintf("password must be at least %d characters", MinPasswordLength))
	}
	if len(params.Password) > maxPasswordBytes {
		return model.User{}, apierror.NewErrInvalidRequest(fmt.Sprintf("password must be at most %d bytes", maxPasswordBytes))
	}

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	_, err = a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.User{}, apierror.NewErrEmailIsTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), a.hashCost)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	user := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if name := strings.TrimSpace(params.FullName); name != "" {
		user.FullName = &name
	}

	created, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrAlreadyExists) {
		return model.User{}, apierror.NewErrEmailIsTaken(email)
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered",
		"user_id", created.ID)

	return created, nil
}

// Login checks the password of a local account and issues a session token.
// Unknown emails, federation-only accounts and wrong passwords are
// indistinguishable to the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (model.SessionResult, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return model.SessionResult{}, apierror.NewErrWrongLogin()
	}

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.SessionResult{}, apierror.NewErrWrongLogin()
	}
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.PasswordHash == nil {
		a.logger.Info("Auth service: password login for federated account",
			"user_id", user.ID)
		return model.SessionResult{}, apierror.NewErrWrongLogin()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: wrong password",
			"user_id", user.ID)
		return model.SessionResult{}, apierror.NewErrWrongLogin()
	}
	if !user.IsActive {
		return model.SessionResult{}, apierror.NewErrInactivePrincipal()
	}

	token, err := a.codec.Issue(user.Email)
	if err != nil {
		return model.SessionResult{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return model.SessionResult{User: user, Token: token}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", err
	}
	if addr.Address != email {
		return "", fmt.Errorf("unexpected address form %q", raw)
	}
	return email, nil
}
