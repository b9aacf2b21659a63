package identity_test

import (
	"context"
	"estate/shared/constant"
	"estate/shared/failure"
	"estate/shared/identity"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	ctx := identity.WithActor(context.Background(), identity.Actor{ID: "u1", Role: constant.RoleTenant})

	actor, err := identity.FromContext(ctx)

	require.NoError(t, err)
	assert.Equal(t, "u1", actor.ID)
	assert.True(t, actor.IsTenant())
	assert.False(t, actor.IsManager())
}

func TestFromContextMissingActor(t *testing.T) {
	_, err := identity.FromContext(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestRequireManager(t *testing.T) {
	managerCtx := identity.WithActor(context.Background(), identity.Actor{ID: "m1", Role: constant.RoleManager})
	tenantCtx := identity.WithActor(context.Background(), identity.Actor{ID: "t1", Role: constant.RoleTenant})

	actor, err := identity.RequireManager(managerCtx)
	require.NoError(t, err)
	assert.Equal(t, "m1", actor.ID)

	_, err = identity.RequireManager(tenantCtx)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
}
