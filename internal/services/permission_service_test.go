package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/models/db_models"
	"tripdesk/pkg/memcache"
	"tripdesk/pkg/utils"
)

func permissionFixture(keys ...string) []db_models.Permission {
	perms := make([]db_models.Permission, 0, len(keys))
	for _, key := range keys {
		perms = append(perms, db_models.Permission{Key: key})
	}
	return perms
}

func TestPermissionsForSuperAdminGetsFullCatalog(t *testing.T) {
	userID := uuid.New()
	repo := &fakePermissionRepo{
		catalog: permissionFixture("tenants.manage", "bookings.manage", "roles.manage"),
		roles:   map[uuid.UUID][]db_models.Role{userID: {db_models.RoleSuperAdmin}},
	}
	svc := NewPermissionService(repo, memcache.NewPermissionCache(), &stubAudit{})

	keys, err := svc.PermissionsFor(context.Background(), userID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"tenants.manage", "bookings.manage", "roles.manage"}, keys)
	assert.Equal(t, 1, repo.catalogCalls)
}

func TestPermissionsForUnionsRoleGrants(t *testing.T) {
	userID := uuid.New()
	repo := &fakePermissionRepo{
		roles: map[uuid.UUID][]db_models.Role{userID: {db_models.RoleEditor, db_models.RoleSupport}},
		grants: map[db_models.Role][]db_models.Permission{
			db_models.RoleEditor:  permissionFixture("tenants.branding", "bookings.manage"),
			db_models.RoleSupport: permissionFixture("bookings.manage", "audit.read"),
		},
	}
	svc := NewPermissionService(repo, memcache.NewPermissionCache(), &stubAudit{})

	keys, err := svc.PermissionsFor(context.Background(), userID)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"tenants.branding", "bookings.manage", "audit.read"}, keys)
}

func TestPermissionsForMemoizes(t *testing.T) {
	userID := uuid.New()
	repo := &fakePermissionRepo{
		roles: map[uuid.UUID][]db_models.Role{userID: {db_models.RoleAdmin}},
		grants: map[db_models.Role][]db_models.Permission{
			db_models.RoleAdmin: permissionFixture("tenants.manage"),
		},
	}
	svc := NewPermissionService(repo, memcache.NewPermissionCache(), &stubAudit{})

	for i := 0; i < 3; i++ {
		_, err := svc.PermissionsFor(context.Background(), userID)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, repo.listCalls, "subsequent lookups must hit the cache")

	svc.Invalidate(userID)
	_, err := svc.PermissionsFor(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.listCalls)
}

func TestAssignRoleInvalidatesCache(t *testing.T) {
	userID := uuid.New()
	repo := &fakePermissionRepo{
		roles: map[uuid.UUID][]db_models.Role{userID: {db_models.RoleSupport}},
		grants: map[db_models.Role][]db_models.Permission{
			db_models.RoleSupport: permissionFixture("audit.read"),
			db_models.RoleAdmin:   permissionFixture("audit.read", "tenants.manage"),
		},
	}
	audit := &stubAudit{}
	svc := NewPermissionService(repo, memcache.NewPermissionCache(), audit)

	before, err := svc.PermissionsFor(context.Background(), userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"audit.read"}, before)

	err = svc.AssignRole(context.Background(), db_models.UserRole{UserID: userID, Role: db_models.RoleAdmin}, uuid.New())
	require.NoError(t, err)

	after, err := svc.PermissionsFor(context.Background(), userID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"audit.read", "tenants.manage"}, after)
	assert.Contains(t, audit.records, "rbac.assign_role")
}

func TestAssignRoleRejectsUnknownRole(t *testing.T) {
	svc := NewPermissionService(&fakePermissionRepo{}, memcache.NewPermissionCache(), &stubAudit{})

	err := svc.AssignRole(context.Background(), db_models.UserRole{UserID: uuid.New(), Role: "owner"}, uuid.New())

	assert.ErrorIs(t, err, utils.ErrInvalidRole)
}

func TestHasPermission(t *testing.T) {
	userID := uuid.New()
	repo := &fakePermissionRepo{
		roles: map[uuid.UUID][]db_models.Role{userID: {db_models.RoleEditor}},
		grants: map[db_models.Role][]db_models.Permission{
			db_models.RoleEditor: permissionFixture("tenants.branding"),
		},
	}
	svc := NewPermissionService(repo, memcache.NewPermissionCache(), &stubAudit{})

	ok, err := svc.HasPermission(context.Background(), userID, "tenants.branding")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasPermission(context.Background(), userID, "roles.manage")
	require.NoError(t, err)
	assert.False(t, ok)
}
