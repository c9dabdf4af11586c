package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		wantMsg string
	}{
		{name: "success", status: http.StatusOK, wantMsg: "HTTP request completed"},
		{name: "client error", status: http.StatusNotFound, wantMsg: "HTTP request completed"},
		{name: "server error", status: http.StatusInternalServerError, wantMsg: "HTTP request failed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf, 0, "json")

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			h := chimw.RequestID(NewLogging(lg).Handle(next))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reviews/all/list", nil))

			out := buf.String()
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, out, tt.wantMsg)
			assert.Contains(t, out, `"path":"/reviews/all/list"`)
			assert.Contains(t, out, `"request_id"`)
		})
	}
}

func TestLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, 0, "json")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	rec := httptest.NewRecorder()
	NewLogging(lg).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Contains(t, buf.String(), `"status":200`)
}
