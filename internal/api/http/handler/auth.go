package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// AuthService manages local email and password accounts.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, email, password string) (model.SessionResult, error)
}

// Auth handles local accounts and the session endpoints shared by every
// sign-in path.
type Auth struct {
	service        AuthService
	contextManager model.ContextManager
	jar            *cookie.Jar
	frontendURL    string
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	service AuthService,
	contextManager model.ContextManager,
	jar *cookie.Jar,
	frontendURL string,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		service:        service,
		contextManager: contextManager,
		jar:            jar,
		frontendURL:    frontendURL,
		logger:         logger,
	}
}

type userResponse struct {
	Email    string     `json:"email"`
	FullName *string    `json:"full_name"`
	Role     model.Role `json:"role"`
}

type meResponse struct {
	User userResponse `json:"user"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type registerResponse struct {
	ID uuid.UUID `json:"id"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{Email: u.Email, FullName: u.FullName, Role: u.Role}
}

// Me returns the authenticated user.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apierror.NewErrMissingCredentials())
		return
	}

	response.JSON(w, http.StatusOK, meResponse{User: toUserResponse(user)})
}

// Logout clears the session cookie and returns to the front-end.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	h.jar.ClearSession(w)
	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}

// Register creates a local account.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	user, err := h.service.Register(r.Context(), model.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, registerResponse{ID: user.ID})
}

// Login verifies a local password and sets the session cookie. The token is
// also returned for clients that send it as a bearer header.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.jar.SetSession(w, result.Token)
	response.JSON(w, http.StatusOK, loginResponse{
		AccessToken: result.Token,
		TokenType:   "bearer",
		User:        toUserResponse(result.User),
	})
}
