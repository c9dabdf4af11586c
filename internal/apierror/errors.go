// Package apierror defines the business errors surfaced to API clients.
// Every error carries the HTTP status and a short machine-readable code the
// boundary layer writes verbatim.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind int

const (
	KindUnauthenticated Kind = iota + 1
	KindForbidden
	KindNotFound
	KindInvalidInput
	KindFederationFailed
	KindConflict
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindFederationFailed:
		return "federation_failed"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// APIError is a business-rule failure with its HTTP mapping.
type APIError struct {
	Kind       Kind
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is matches another APIError of the same kind and code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// As extracts an APIError from an error chain.
func As(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err carries an APIError of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := As(err)
	return ok && apiErr.Kind == kind
}

func newError(kind Kind, status int, code, message string) *APIError {
	return &APIError{Kind: kind, HTTPStatus: status, Code: code, Message: message}
}

func NewErrMissingCredentials() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "missing_credentials", "no credential presented")
}

func NewErrInvalidCredentials() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "invalid_credentials", "credential invalid or expired")
}

func NewErrUnknownPrincipal() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "unknown_principal", "credential valid but principal no longer exists")
}

func NewErrInactivePrincipal() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "inactive_principal", "account is disabled")
}

func NewErrWrongLogin() *APIError {
	return newError(KindUnauthenticated, http.StatusUnauthorized, "invalid_credentials", "email or password is incorrect")
}

func NewErrForbidden() *APIError {
	return newError(KindForbidden, http.StatusForbidden, "forbidden", "not allowed")
}

func NewErrReviewNotFound(id int64) *APIError {
	return newError(KindNotFound, http.StatusNotFound, "review_not_found", fmt.Sprintf("review %d not found", id))
}

func NewErrSpeciesNotFound(label string) *APIError {
	return newError(KindNotFound, http.StatusNotFound, "species_not_found", fmt.Sprintf("species %q not found", label))
}

func NewErrInvalidRating(rating int) *APIError {
	return newError(KindInvalidInput, http.StatusBadRequest, "invalid_rating", fmt.Sprintf("rating must be 1-5, got %d", rating))
}

func NewErrUnknownClass(label string) *APIError {
	return newError(KindInvalidInput, http.StatusBadRequest, "unknown_class", fmt.Sprintf("unknown class %q", label))
}

func NewErrInvalidRequest(message string) *APIError {
	return newError(KindInvalidInput, http.StatusBadRequest, "invalid_request", message)
}

func NewErrFederationFailed(reason string) *APIError {
	return newError(KindFederationFailed, http.StatusBadRequest, "federation_failed", reason)
}

func NewErrEmailIsTaken(email string) *APIError {
	return newError(KindConflict, http.StatusConflict, "email_taken", fmt.Sprintf("email %s is already taken", email))
}

func NewErrClassifierUnavailable() *APIError {
	return newError(KindUnavailable, http.StatusServiceUnavailable, "classifier_unavailable", "classifier is unavailable")
}
