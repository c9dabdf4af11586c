package handler

import (
	"context"
	"net/http"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// FederationService drives sign-in through the external identity provider.
type FederationService interface {
	Initiate() (authURL string, state string, err error)
	Complete(ctx context.Context, code string) (model.SessionResult, error)
}

// Federation handles the Google sign-in redirects.
type Federation struct {
	service     FederationService
	jar         *cookie.Jar
	frontendURL string
	logger      *logger.Logger
}

// NewFederation creates a new Federation handler.
func NewFederation(service FederationService, jar *cookie.Jar, frontendURL string, logger *logger.Logger) *Federation {
	return &Federation{
		service:     service,
		jar:         jar,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// Login redirects the browser to the provider.
func (h *Federation) Login(w http.ResponseWriter, r *http.Request) {
	authURL, state, err := h.service.Initiate()
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.jar.SetState(w, state)
	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback completes sign-in, sets the session cookie and sends the browser
// back to the front-end.
func (h *Federation) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	expected, ok := h.jar.PopState(w, r)
	if !ok || q.Get("state") != expected {
		h.logger.Warn("Federation handler: state mismatch",
			"has_cookie", ok)
		handleError(w, r, h.logger, apierror.NewErrFederationFailed("state mismatch"))
		return
	}

	if providerErr := q.Get("error"); providerErr != "" {
		h.logger.Info("Federation handler: provider returned an error",
			"error", providerErr)
		handleError(w, r, h.logger, apierror.NewErrFederationFailed("provider denied the request"))
		return
	}

	result, err := h.service.Complete(r.Context(), q.Get("code"))
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	h.logger.Info("Federation handler: user signed in",
		"user_id", result.User.ID)

	h.jar.SetSession(w, result.Token)
	http.Redirect(w, r, h.frontendURL, http.StatusFound)
}
