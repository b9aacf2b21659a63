// Package constant holds names shared across layers: roles, request parameters,
// headers, formats and tracing scopes.
package constant

import (
	"time"
)

// Roles an actor can hold.
const (
	RoleTenant  = "tenant"
	RoleManager = "manager"
)

// Query and path parameters.
const (
	RequestParamPage       = "page"
	RequestParamLimit      = "limit"
	RequestParamSortBy     = "sort_by"
	RequestParamSortDir    = "sort_dir"
	RequestParamID         = "id"
	RequestParamResourceID = "resourceID"
	RequestParamDate       = "date"
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

// Audit columns stamped on every update.
const (
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

// Postgres error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html.
const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = time.DateOnly
	SlotFormat     = "15:04"
	MinutesPerHour = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelQueryAttributeKey   = "query"
)

const (
	RequestHeaderAuthorization = "Authorization"
	RequestHeaderUserAgent     = "User-Agent"
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderForwardedFor  = "X-Forwarded-For"
	RequestHeaderRealIP        = "X-Real-IP"
	RequestHeaderAPIKey        = "X-API-Key"
	RequestHeaderActorID       = "X-Actor-ID"
	RequestHeaderActorRole     = "X-Actor-Role"
	RequestHeaderRetryAfter    = "Retry-After"

	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
)

const ContentTypeJSON = "application/json"

// Bodies of the canned responses.
const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "internal server error"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
