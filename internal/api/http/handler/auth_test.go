package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/context"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/mocks"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/testutil"
)

func newAuthMux(t *testing.T, user *model.User) (*chi.Mux, *mocks.AuthService) {
	t.Helper()

	svc := mocks.NewAuthService(t)
	cm := httpctx.NewManager()
	h := NewAuth(svc, cm, cookie.NewJar(false, time.Hour), frontendURL, testutil.MakeNoopLogger())

	mux := chi.NewRouter()
	mux.Use(asUser(cm, user))
	mux.Get("/me", h.Me)
	mux.Get("/logout", h.Logout)
	mux.Post("/auth/register", h.Register)
	mux.Post("/auth/login", h.Login)
	return mux, svc
}

func TestAuth_Me(t *testing.T) {
	t.Parallel()

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()
		user := testutil.MakeUser("a@example.com", model.RoleAdmin)
		mux, _ := newAuthMux(t, &user)

		rec := serve(t, mux, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"user":{"email":"a@example.com","full_name":"User a@example.com","role":"admin"}}`, rec.Body.String())
	})

	t.Run("null full name", func(t *testing.T) {
		t.Parallel()
		user := testutil.MakeUser("b@example.com", model.RoleUser)
		user.FullName = nil
		mux, _ := newAuthMux(t, &user)

		rec := serve(t, mux, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.JSONEq(t, `{"user":{"email":"b@example.com","full_name":null,"role":"user"}}`, rec.Body.String())
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		mux, _ := newAuthMux(t, nil)

		rec := serve(t, mux, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	mux, _ := newAuthMux(t, nil)
	rec := serve(t, mux, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, frontendURL, rec.Header().Get("Location"))
	c := responseCookie(rec, cookie.SessionName)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}

func TestAuth_Register(t *testing.T) {
	t.Parallel()

	t.Run("created", func(t *testing.T) {
		t.Parallel()
		mux, svc := newAuthMux(t, nil)
		user := testutil.MakeUser("new@example.com", model.RoleUser)
		svc.On("Register", mock.Anything, model.RegisterParams{
			Email: "new@example.com", Password: "longenough", FullName: "New",
		}).Return(user, nil)

		rec := serve(t, mux, httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"email":"new@example.com","password":"longenough","full_name":"New"}`)))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, user.ID.String(), decodeBody[map[string]string](t, rec)["id"])
	})

	t.Run("email taken", func(t *testing.T) {
		t.Parallel()
		mux, svc := newAuthMux(t, nil)
		svc.On("Register", mock.Anything, mock.Anything).Return(model.User{}, apierror.NewErrEmailIsTaken("x@example.com"))

		rec := serve(t, mux, httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"email":"x@example.com","password":"longenough"}`)))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "email_taken", errorCode(t, rec))
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		mux, _ := newAuthMux(t, nil)

		rec := serve(t, mux, httptest.NewRequest(http.MethodPost, "/auth/register",
			strings.NewReader(`{"email":"x@example.com"} {"email":"y@example.com"}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuth_Login(t *testing.T) {
	t.Parallel()

	t.Run("sets session cookie", func(t *testing.T) {
		t.Parallel()
		mux, svc := newAuthMux(t, nil)
		user := testutil.MakeUser("a@example.com", model.RoleUser)
		svc.On("Login", mock.Anything, "a@example.com", "secret-pass").Return(model.SessionResult{User: user, Token: "jwt"}, nil)

		rec := serve(t, mux, httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"a@example.com","password":"secret-pass"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		c := responseCookie(rec, cookie.SessionName)
		require.NotNil(t, c)
		assert.Equal(t, "jwt", c.Value)

		body := decodeBody[loginResponse](t, rec)
		assert.Equal(t, "jwt", body.AccessToken)
		assert.Equal(t, "bearer", body.TokenType)
		assert.Equal(t, "a@example.com", body.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		mux, svc := newAuthMux(t, nil)
		svc.On("Login", mock.Anything, "a@example.com", "nope").Return(model.SessionResult{}, apierror.NewErrWrongLogin())

		rec := serve(t, mux, httptest.NewRequest(http.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"a@example.com","password":"nope"}`)))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid_credentials", errorCode(t, rec))
		assert.Nil(t, responseCookie(rec, cookie.SessionName))
	})
}
