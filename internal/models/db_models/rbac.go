package db_models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
	RoleEditor     Role = "editor"
	RoleSupport    Role = "support"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSuperAdmin, RoleEditor, RoleSupport:
		return true
	}
	return false
}

// Permission is a stable capability key, e.g. "bookings.manage".
type Permission struct {
	BaseModel
	Key         string `gorm:"uniqueIndex" json:"key"`
	Description string `json:"description"`
}

// RolePermission maps one of the four roles to a permission.
// super_admin holds every permission implicitly and needs no rows here.
type RolePermission struct {
	BaseModel
	Role         Role      `gorm:"type:varchar(16);uniqueIndex:idx_role_perm" json:"role"`
	PermissionID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_role_perm" json:"permission_id"`

	Permission Permission `gorm:"foreignKey:PermissionID" json:"-"`
}

func (rp *RolePermission) BeforeSave(tx *gorm.DB) error {
	if !rp.Role.Valid() {
		return errors.New("unknown role value")
	}
	return nil
}

type UserRole struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_role" json:"user_id"`
	Role   Role      `gorm:"type:varchar(16);uniqueIndex:idx_user_role" json:"role"`
}

func (ur *UserRole) BeforeSave(tx *gorm.DB) error {
	if !ur.Role.Valid() {
		return errors.New("unknown role value")
	}
	return nil
}
