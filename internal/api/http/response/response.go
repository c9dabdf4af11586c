// Package response writes JSON bodies and maps errors to HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg} with status 200.
func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, map[string]string{"message": msg})
}

// Error writes err. An APIError keeps its status and code, a bare
// model.ErrNotFound becomes 404 and anything else 500 without detail.
// It returns the status written.
func Error(w http.ResponseWriter, err error) int {
	status, body := Classify(err)
	JSON(w, status, body)
	return status
}

// Classify returns the status and body Error would write for err.
func Classify(err error) (int, ErrorBody) {
	if apiErr, ok := apierror.As(err); ok {
		return apiErr.HTTPStatus, ErrorBody{Error: apiErr.Code, Detail: apiErr.Message}
	}

	if errors.Is(err, model.ErrNotFound) {
		return http.StatusNotFound, ErrorBody{Error: "not_found", Detail: "resource not found"}
	}

	return http.StatusInternalServerError, ErrorBody{Error: "internal_error", Detail: "internal server error"}
}
