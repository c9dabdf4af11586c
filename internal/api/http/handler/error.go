package handler

import (
	"net/http"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
)

// handleError writes err as JSON. Unexpected errors are logged since the
// client only sees a generic body.
func handleError(w http.ResponseWriter, r *http.Request, lg *logger.Logger, err error) {
	status := response.Error(w, err)
	if status >= http.StatusInternalServerError {
		lg.Error("HTTP handler: request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}
}
