package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/mocks"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/testutil"
)

func TestHealth_Root(t *testing.T) {
	h := NewHealth(mocks.NewHealthChecker(t), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()

	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"API Running"}`, rec.Body.String())
}

func TestHealth_Ping(t *testing.T) {
	h := NewHealth(mocks.NewHealthChecker(t), testutil.MakeNoopLogger())
	rec := httptest.NewRecorder()

	h.Ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.JSONEq(t, `{"pong":true}`, rec.Body.String())
}

func TestHealth_Ready(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
	}{
		{name: "database up", wantStatus: http.StatusOK},
		{name: "database down", pingErr: errors.New("dial tcp: connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db := mocks.NewHealthChecker(t)
			db.On("Ping", mock.Anything).Return(tt.pingErr)
			h := NewHealth(db, testutil.MakeNoopLogger())
			rec := httptest.NewRecorder()

			h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
