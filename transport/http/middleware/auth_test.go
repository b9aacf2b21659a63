package middleware_test

import (
	"estate/config"
	"estate/infras/jwt"
	"estate/infras/otel/mocks"
	"estate/permissions"
	"estate/shared/constant"
	"estate/shared/identity"
	"estate/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKey = "internal-key"

func newAuthRouter(t *testing.T) (http.Handler, jwt.JWT) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.App.APIKey = apiKey

	jwtService := jwt.New(cfg)
	authRole := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()
	router.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)

	ok := func(w http.ResponseWriter, r *http.Request) {
		actor, _ := identity.FromContext(r.Context())
		w.Header().Set("X-Actor", actor.ID)
		w.WriteHeader(http.StatusOK)
	}

	router.Route("/v1", func(r chi.Router) {
		r.Get("/viewings", ok)
		r.Post("/scheduled-maintenance", ok)
	})

	return router, jwtService
}

func bearer(t *testing.T, jwtService jwt.JWT, userID, role string) string {
	t.Helper()

	token, err := jwtService.Issue(identity.Actor{ID: userID, Role: role})
	require.NoError(t, err)

	return "Bearer " + token
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/viewings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRejectsMalformedToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer not-a-token")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthPlacesActorOnContext(t *testing.T) {
	router, jwtService := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, bearer(t, jwtService, "tenant-1", constant.RoleTenant))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tenant-1", rec.Header().Get("X-Actor"))
}

func TestRBACRestrictsManagerRoutes(t *testing.T) {
	router, jwtService := newAuthRouter(t)

	tests := []struct {
		name string
		role string
		want int
	}{
		{name: "tenant is forbidden", role: constant.RoleTenant, want: http.StatusForbidden},
		{name: "manager is allowed", role: constant.RoleManager, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/scheduled-maintenance", nil)
			req.Header.Set(constant.RequestHeaderAuthorization, bearer(t, jwtService, "user-1", tt.role))

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	router, _ := newAuthRouter(t)

	valid := httptest.NewRequest(http.MethodPost, "/v1/scheduled-maintenance", nil)
	valid.Header.Set(constant.RequestHeaderAPIKey, apiKey)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, valid)
	assert.Equal(t, http.StatusOK, rec.Code)

	invalid := httptest.NewRequest(http.MethodPost, "/v1/scheduled-maintenance", nil)
	invalid.Header.Set(constant.RequestHeaderAPIKey, "wrong")

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, invalid)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthRejectsUnknownRole(t *testing.T) {
	router, jwtService := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, bearer(t, jwtService, "admin-1", "admin"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyActsForForwardedActor(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
	req.Header.Set(constant.RequestHeaderAPIKey, apiKey)
	req.Header.Set(constant.RequestHeaderActorID, "manager-7")
	req.Header.Set(constant.RequestHeaderActorRole, constant.RoleManager)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "manager-7", rec.Header().Get("X-Actor"))
}
