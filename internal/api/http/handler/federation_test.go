package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/mocks"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/testutil"
)

const frontendURL = "http://localhost:3000"

func newFederationMux(t *testing.T) (*chi.Mux, *mocks.FederationService) {
	t.Helper()

	svc := mocks.NewFederationService(t)
	h := NewFederation(svc, cookie.NewJar(false, time.Hour), frontendURL, testutil.MakeNoopLogger())

	mux := chi.NewRouter()
	mux.Get("/google/login", h.Login)
	mux.Get("/google/callback", h.Callback)
	return mux, svc
}

func TestFederation_Login(t *testing.T) {
	t.Parallel()

	t.Run("redirects with state cookie", func(t *testing.T) {
		t.Parallel()
		mux, svc := newFederationMux(t)
		svc.On("Initiate").Return("https://accounts.google.com/o/oauth2/v2/auth?state=s1", "s1", nil)

		rec := serve(t, mux, httptest.NewRequest(http.MethodGet, "/google/login", nil))

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=s1", rec.Header().Get("Location"))
		state := responseCookie(rec, cookie.StateName)
		require.NotNil(t, state)
		assert.Equal(t, "s1", state.Value)
		assert.True(t, state.HttpOnly)
	})

	t.Run("state generation failure", func(t *testing.T) {
		t.Parallel()
		mux, svc := newFederationMux(t)
		svc.On("Initiate").Return("", "", errors.New("entropy exhausted"))

		rec := serve(t, mux, httptest.NewRequest(http.MethodGet, "/google/login", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Nil(t, responseCookie(rec, cookie.StateName))
	})
}

func TestFederation_Callback(t *testing.T) {
	t.Parallel()

	user := testutil.MakeUser("somchai@example.com", model.RoleUser)

	tests := []struct {
		name        string
		query       string
		stateCookie string
		expectCall  bool
		svcErr      error
		wantStatus  int
		wantSession bool
	}{
		{
			name:        "success",
			query:       "?code=abc&state=s1",
			stateCookie: "s1",
			expectCall:  true,
			wantStatus:  http.StatusFound,
			wantSession: true,
		},
		{
			name:        "state mismatch",
			query:       "?code=abc&state=forged",
			stateCookie: "s1",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:       "missing state cookie",
			query:      "?code=abc&state=s1",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "provider error",
			query:       "?error=access_denied&state=s1",
			stateCookie: "s1",
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "exchange rejected",
			query:       "?code=bad&state=s1",
			stateCookie: "s1",
			expectCall:  true,
			svcErr:      apierror.NewErrFederationFailed("code rejected"),
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux, svc := newFederationMux(t)
			if tt.expectCall {
				if tt.svcErr != nil {
					svc.On("Complete", mock.Anything, mock.Anything).Return(model.SessionResult{}, tt.svcErr)
				} else {
					svc.On("Complete", mock.Anything, "abc").Return(model.SessionResult{User: user, Token: "jwt"}, nil)
				}
			}

			req := httptest.NewRequest(http.MethodGet, "/google/callback"+tt.query, nil)
			if tt.stateCookie != "" {
				req.AddCookie(&http.Cookie{Name: cookie.StateName, Value: tt.stateCookie})
			}
			rec := serve(t, mux, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			session := responseCookie(rec, cookie.SessionName)
			if !tt.wantSession {
				assert.Nil(t, session)
				assert.Equal(t, "federation_failed", errorCode(t, rec))
				return
			}
			require.NotNil(t, session)
			assert.Equal(t, "jwt", session.Value)
			assert.Equal(t, 3600, session.MaxAge)
			assert.Equal(t, frontendURL, rec.Header().Get("Location"))
		})
	}
}
