// Package identity exposes the authenticated actor that the auth middleware placed on
// the request context.
package identity

import (
	"context"
	"estate/shared/constant"
	"estate/shared/failure"
)

type actorKey struct{}

type Actor struct {
	ID   string
	Role string
}

func (a Actor) IsManager() bool {
	return a.Role == constant.RoleManager
}

func (a Actor) IsTenant() bool {
	return a.Role == constant.RoleTenant
}

// FromContext returns the current actor. A request without a user id is unauthorized.
func FromContext(ctx context.Context) (Actor, error) {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	if actor.ID == constant.Empty {
		return Actor{}, failure.Unauthorized("missing actor") //nolint:wrapcheck
	}

	return actor, nil
}

// WithActor stores the actor on ctx the same way the auth middleware does.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// RequireManager returns the actor when it holds the manager role and Forbidden otherwise.
func RequireManager(ctx context.Context) (Actor, error) {
	actor, err := FromContext(ctx)
	if err != nil {
		return actor, err
	}

	if !actor.IsManager() {
		return actor, failure.ForbiddenError
	}

	return actor, nil
}
