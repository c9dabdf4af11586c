package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/context"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/mocks"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/species"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/testutil"
)

type fixture struct {
	session    *mocks.SessionResolver
	federation *mocks.FederationService
	review     *mocks.ReviewService
	handler    http.Handler
}

func newFixture(t *testing.T, withFederation bool) fixture {
	t.Helper()

	f := fixture{
		session: mocks.NewSessionResolver(t),
		review:  mocks.NewReviewService(t),
	}
	services := Services{
		Session:    f.session,
		Auth:       mocks.NewAuthService(t),
		Review:     f.review,
		Prediction: mocks.NewPredictionService(t),
		Catalog:    species.Default(),
		Health:     mocks.NewHealthChecker(t),
	}
	if withFederation {
		f.federation = mocks.NewFederationService(t)
		services.Federation = f.federation
	}

	r := New(services, Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		SessionTTL:     time.Hour,
		FrontendURL:    "http://localhost:3000",
	}, httpctx.NewManager(), testutil.MakeNoopLogger())
	f.handler = r.Register()
	return f
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)

	rec := do(f.handler, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"API Running"}`, rec.Body.String())

	rec = do(f.handler, httptest.NewRequest(http.MethodGet, "/species/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	f.review.On("ListAll", mock.Anything, 0, 20).Return([]model.ReviewItem{}, nil)
	rec = do(f.handler, httptest.NewRequest(http.MethodGet, "/reviews/all/list", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	f.session.On("Resolve", mock.Anything, "").Return(model.User{}, apierror.NewErrMissingCredentials())

	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/me", nil),
		httptest.NewRequest(http.MethodPost, "/reviews/", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodGet, "/reviews/my/list", nil),
		httptest.NewRequest(http.MethodPut, "/reviews/1", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodPut, "/reviews/1/location", strings.NewReader(`{}`)),
		httptest.NewRequest(http.MethodDelete, "/reviews/1", nil),
	}

	for _, req := range requests {
		rec := do(f.handler, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestRouter_AuthenticatedCreate(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)
	user := testutil.MakeUser("a@example.com", model.RoleUser)
	f.session.On("Resolve", mock.Anything, "tok").Return(user, nil)
	f.review.On("Create", mock.Anything, mock.Anything, user).Return(int64(1), nil)

	for _, path := range []string{"/reviews/", "/reviews"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"class_name":"สะแล","review_text":"ดี","rating":4}`))
		req.AddCookie(&http.Cookie{Name: cookie.SessionName, Value: "tok"})

		rec := do(f.handler, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"review_id":1}`, rec.Body.String())
	}
}

func TestRouter_GoogleRoutesOptional(t *testing.T) {
	t.Parallel()

	disabled := newFixture(t, false)
	rec := do(disabled.handler, httptest.NewRequest(http.MethodGet, "/google/login", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	enabled := newFixture(t, true)
	enabled.federation.On("Initiate").Return("https://accounts.google.com/auth?state=s", "s", nil)
	rec = do(enabled.handler, httptest.NewRequest(http.MethodGet, "/google/login", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()

	f := newFixture(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/reviews/my/list", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := do(f.handler, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/reviews/my/list", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec = do(f.handler, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
