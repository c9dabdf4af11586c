package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
)

const maxJSONBodyBytes = 1 << 20

// decodeJSON reads a single JSON object from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return apierror.NewErrInvalidRequest("request body is empty")
		}
		return apierror.NewErrInvalidRequest(fmt.Sprintf("malformed JSON body: %v", err))
	}
	if dec.More() {
		return apierror.NewErrInvalidRequest("request body must contain a single JSON object")
	}
	return nil
}

func int64Param(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierror.NewErrInvalidRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}

// stringParam returns a decoded path parameter.
func stringParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// intQuery returns def when the query parameter is absent.
func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierror.NewErrInvalidRequest(fmt.Sprintf("%s must be an integer", name))
	}
	return v, nil
}
