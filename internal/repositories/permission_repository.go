package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type PermissionRepositoryInterface interface {
	ListCatalog(ctx context.Context) ([]db_models.Permission, error)
	ListRolesForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Role, error)
	ListPermissionsForRoles(ctx context.Context, roles []db_models.Role) ([]db_models.Permission, error)
	InsertUserRole(ctx context.Context, userRole *db_models.UserRole) error
	DeleteUserRole(ctx context.Context, userID uuid.UUID, role db_models.Role) error
}

func NewPermissionRepository(db *gorm.DB) PermissionRepositoryInterface {
	return &PermissionRepository{db: db}
}

type PermissionRepository struct {
	db *gorm.DB
}

func (p *PermissionRepository) ListCatalog(ctx context.Context) ([]db_models.Permission, error) {
	var perms []db_models.Permission
	if err := p.db.WithContext(ctx).Find(&perms).Error; err != nil {
		return nil, err
	}
	return perms, nil
}

func (p *PermissionRepository) ListRolesForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Role, error) {
	var userRoles []db_models.UserRole
	err := p.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&userRoles).Error
	if err != nil {
		return nil, err
	}

	roles := make([]db_models.Role, 0, len(userRoles))
	for _, ur := range userRoles {
		roles = append(roles, ur.Role)
	}
	return roles, nil
}

func (p *PermissionRepository) ListPermissionsForRoles(ctx context.Context, roles []db_models.Role) ([]db_models.Permission, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	var perms []db_models.Permission
	err := p.db.WithContext(ctx).
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role IN ?", roles).
		Distinct().
		Find(&perms).Error
	if err != nil {
		return nil, err
	}
	return perms, nil
}

func (p *PermissionRepository) InsertUserRole(ctx context.Context, userRole *db_models.UserRole) error {
	return p.db.WithContext(ctx).Create(userRole).Error
}

func (p *PermissionRepository) DeleteUserRole(ctx context.Context, userID uuid.UUID, role db_models.Role) error {
	return p.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&db_models.UserRole{}).Error
}
