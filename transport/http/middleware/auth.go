package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"estate/config"
	"estate/infras/jwt"
	"estate/infras/otel"
	"estate/permissions"
	"estate/shared/constant"
	"estate/shared/failure"
	"estate/shared/identity"
	"estate/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// skipAuthKey marks a request already authenticated by the internal API key.
type skipAuthKey struct{}

type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth turns the bearer token into the request's identity.Actor. Tokens without a user id
// or with a role other than tenant or manager are rejected.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		pattern, endpoint, _ := m.endpoint(request)
		if skipped(request.Context()) || endpoint.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.route":      pattern,
			"http.method":     request.Method,
		})

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == "" {
			reject(writer, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(writer, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.Verify(tokenString)
		if err != nil {
			reject(writer, scope, failure.Unauthorized(tokenMessage(err)))

			return
		}

		actor := claims.Actor()
		if actor.ID == "" || !(actor.IsTenant() || actor.IsManager()) {
			log.Warn().Str("user_id", actor.ID).Str("role", actor.Role).Msg("token does not carry a scheduling actor")
			reject(writer, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		scope.SetAttribute("actor.role", actor.Role)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(identity.WithActor(request.Context(), actor)))
	})
}

// RBAC admits the actor when its role is listed for the route. Routes missing from the
// permission table admit any authenticated actor.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		if skipped(ctx) || m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		_, endpoint, found := m.endpoint(request)
		actor, _ := identity.FromContext(ctx)

		if found && !endpoint.Skip && !endpoint.Allows(actor.Role) {
			scope.SetAttributes(map[string]any{
				"actor.role":    actor.Role,
				"allowed_roles": endpoint.Roles,
				"reason":        "role_not_allowed",
			})
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

// APIKey authenticates internal callers. A valid key bypasses Auth and RBAC; the caller
// may act for a user through the X-Actor-ID and X-Actor-Role headers.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			scope.SetAttribute("http.source", "client")
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttribute("http.source", "internal")

		expected := m.cfg.App.APIKey
		if expected == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			reject(writer, scope, failure.ForbiddenError)

			return
		}

		ctx := context.WithValue(request.Context(), skipAuthKey{}, true)
		if actorID := request.Header.Get(constant.RequestHeaderActorID); actorID != "" {
			ctx = identity.WithActor(ctx, identity.Actor{
				ID:   actorID,
				Role: request.Header.Get(constant.RequestHeaderActorRole),
			})
		}

		scope.End()
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// endpoint resolves the chi route pattern of the request and its permission entry.
func (m *authRoleImpl) endpoint(request *http.Request) (string, permissions.Endpoint, bool) {
	pattern := request.URL.Path
	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		pattern = rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
	}

	if m.permission == nil {
		return pattern, permissions.Endpoint{}, false
	}

	endpoint, found := m.permission.Lookup(request.Method, pattern)

	return pattern, endpoint, found
}

func skipped(ctx context.Context) bool {
	skip, _ := ctx.Value(skipAuthKey{}).(bool)

	return skip
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Token validation failed"
	}
}

func reject(writer http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	scope.End()
	response.WithError(writer, err)
}
