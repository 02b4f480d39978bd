package services

import (
	"context"

	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/memcache"
	"tripdesk/pkg/utils"
)

type PermissionServiceInterface interface {
	// PermissionsFor resolves and memoizes a user's permission keys.
	// super_admin yields the entire catalog regardless of explicit rows.
	PermissionsFor(ctx context.Context, userID uuid.UUID) ([]string, error)
	HasPermission(ctx context.Context, userID uuid.UUID, key string) (bool, error)
	// Invalidate drops the memoized set; callers must invoke it after any
	// role mutation, the cache is never refreshed automatically.
	Invalidate(userID uuid.UUID)

	AssignRole(ctx context.Context, request db_models.UserRole, actor uuid.UUID) error
	RevokeRole(ctx context.Context, userID uuid.UUID, role db_models.Role, actor uuid.UUID) error
	Catalog(ctx context.Context) ([]db_models.Permission, error)
}

func NewPermissionService(
	repo repositories.PermissionRepositoryInterface,
	cache *memcache.PermissionCache,
	audit AuditServiceInterface,
) PermissionServiceInterface {
	return &PermissionService{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

type PermissionService struct {
	repo  repositories.PermissionRepositoryInterface
	cache *memcache.PermissionCache
	audit AuditServiceInterface
}

func (p *PermissionService) PermissionsFor(ctx context.Context, userID uuid.UUID) ([]string, error) {
	if cached, ok := p.cache.Get(userID); ok {
		return cached, nil
	}

	roles, err := p.repo.ListRolesForUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var perms []db_models.Permission
	if hasSuperAdmin(roles) {
		perms, err = p.repo.ListCatalog(ctx)
	} else {
		perms, err = p.repo.ListPermissionsForRoles(ctx, roles)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	keys := make([]string, 0, len(perms))
	for _, perm := range perms {
		keys = append(keys, perm.Key)
	}

	p.cache.Set(userID, keys)
	return keys, nil
}

func hasSuperAdmin(roles []db_models.Role) bool {
	for _, role := range roles {
		if role == db_models.RoleSuperAdmin {
			return true
		}
	}
	return false
}

func (p *PermissionService) HasPermission(ctx context.Context, userID uuid.UUID, key string) (bool, error) {
	perms, err := p.PermissionsFor(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, k := range perms {
		if k == key {
			return true, nil
		}
	}
	return false, nil
}

func (p *PermissionService) Invalidate(userID uuid.UUID) {
	p.cache.Clear(userID)
}

func (p *PermissionService) AssignRole(ctx context.Context, request db_models.UserRole, actor uuid.UUID) error {
	if !request.Role.Valid() {
		return utils.ErrInvalidRole
	}

	if err := p.repo.InsertUserRole(ctx, &request); err != nil {
		return utils.ErrDatabaseError
	}

	p.Invalidate(request.UserID)
	p.audit.Record(ctx, actor, "rbac.assign_role", "user_role", request.UserID.String(), nil, request)
	return nil
}

func (p *PermissionService) RevokeRole(ctx context.Context, userID uuid.UUID, role db_models.Role, actor uuid.UUID) error {
	if !role.Valid() {
		return utils.ErrInvalidRole
	}

	if err := p.repo.DeleteUserRole(ctx, userID, role); err != nil {
		return utils.ErrDatabaseError
	}

	p.Invalidate(userID)
	p.audit.Record(ctx, actor, "rbac.revoke_role", "user_role", userID.String(), map[string]string{"role": string(role)}, nil)
	return nil
}

func (p *PermissionService) Catalog(ctx context.Context) ([]db_models.Permission, error) {
	perms, err := p.repo.ListCatalog(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return perms, nil
}
