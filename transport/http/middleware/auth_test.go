package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"stayadmin/config"
	"stayadmin/infras/jwt"
	otelMocks "stayadmin/infras/otel/mocks"
	"stayadmin/permissions"
	"stayadmin/shared/constant"
	"stayadmin/shared/failure"
	gModel "stayadmin/shared/model"
	"stayadmin/transport/http/middleware"
	"stayadmin/transport/http/response"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "internal-key"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "stayadmin"
	cfg.App.APIKey = testAPIKey
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 5

	return cfg
}

type authFixture struct {
	jwt    jwt.JWT
	router chi.Router
	actor  gModel.Actor
}

func newAuthFixture(t *testing.T, cfg *config.Config) *authFixture {
	t.Helper()

	f := &authFixture{jwt: jwt.New(cfg)}
	mw := middleware.NewAuthRoleMiddleware(f.jwt, otelMocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		v1.Group(func(admin chi.Router) {
			admin.Use(mw.Auth, mw.RBAC)
			admin.Post("/bookings/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
				f.actor = gModel.ActorFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})
		})
		v1.Group(func(internal chi.Router) {
			internal.Use(mw.APIKey)
			internal.Post("/internal/bookings", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
		})
	})

	f.router = router

	return f
}

func (f *authFixture) token(t *testing.T, identity jwt.Identity) string {
	t.Helper()

	token, err := f.jwt.GenerateAccessToken(identity)
	require.NoError(t, err)

	return token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Error {
	t.Helper()

	var body response.Error
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.NotNil(t, body.Kind)

	return body
}

func TestAuth(t *testing.T) {
	f := newAuthFixture(t, newConfig())

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/b-1/cancel", nil)
		rec := httptest.NewRecorder()

		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, failure.KindUnauthorized, *decodeError(t, rec).Kind)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/b-1/cancel", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Token abc")
		rec := httptest.NewRecorder()

		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := newConfig()
		other.JWT.AccessSecret = "other-secret"

		token, err := jwt.New(other).GenerateAccessToken(jwt.Identity{UserID: "admin-1", Role: constant.RoleAdmin})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/b-1/cancel", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid token", *decodeError(t, rec).Error)
	})

	t.Run("valid token carries the actor", func(t *testing.T) {
		token := f.token(t, jwt.Identity{UserID: "admin-1", Name: "Rina", Email: "rina@example.com", Role: constant.RoleAdmin})

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/b-1/cancel", nil)
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, gModel.Actor{ID: "admin-1", Name: "Rina"}, f.actor)
	})
}

func TestRBAC_RoleNotAllowed(t *testing.T) {
	f := newAuthFixture(t, newConfig())
	token := f.token(t, jwt.Identity{UserID: "guest-1", Role: "guest"})

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/b-1/cancel", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, failure.KindForbidden, *decodeError(t, rec).Kind)
}

func TestAPIKey(t *testing.T) {
	f := newAuthFixture(t, newConfig())

	tests := []struct {
		name string
		key  string
		want int
	}{
		{name: "missing key", key: "", want: http.StatusUnauthorized},
		{name: "wrong key", key: "nope", want: http.StatusForbidden},
		{name: "matching key", key: testAPIKey, want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/internal/bookings", nil)
			if tt.key != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.key)
			}

			rec := httptest.NewRecorder()

			f.router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAPIKey_UnconfiguredKeyRejectsEverything(t *testing.T) {
	cfg := newConfig()
	cfg.App.APIKey = ""
	f := newAuthFixture(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/bookings", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, "anything")
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
