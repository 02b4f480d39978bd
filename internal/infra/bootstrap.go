package infra

import (
	"log"

	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

// defaultPermissions is the seed catalog; keys are referenced by the
// back-office route guards.
var defaultPermissions = []db_models.Permission{
	{Key: "tenants.manage", Description: "Create tenants and toggle their status"},
	{Key: "tenants.branding", Description: "Edit tenant branding and domains"},
	{Key: "bookings.manage", Description: "Confirm, cancel and complete bookings"},
	{Key: "billing.manage", Description: "Run checkouts and handle invoices"},
	{Key: "roles.manage", Description: "Assign and revoke user roles"},
	{Key: "audit.read", Description: "Read audit history"},
}

// defaultRoleGrants maps the non-super roles to their permissions.
// super_admin holds everything implicitly and gets no rows.
var defaultRoleGrants = map[db_models.Role][]string{
	db_models.RoleAdmin:   {"tenants.manage", "tenants.branding", "bookings.manage", "billing.manage", "audit.read"},
	db_models.RoleEditor:  {"tenants.branding"},
	db_models.RoleSupport: {"bookings.manage", "audit.read"},
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Tenant{},
		&db_models.TenantBranding{},
		&db_models.TenantDomain{},
		&db_models.FeatureFlag{},
		&db_models.Plan{},
		&db_models.Subscription{},
		&db_models.Invoice{},
		&db_models.Booking{},
		&db_models.Permission{},
		&db_models.RolePermission{},
		&db_models.UserRole{},
		&db_models.AuditLog{},
		&db_models.Account{},
		&db_models.APIKey{},
		&db_models.ServiceEndpoint{},
	)
}

// SeedRBAC inserts the permission catalog and default role grants if they
// are not present yet. Idempotent across restarts.
func SeedRBAC(db *gorm.DB) {
	for _, perm := range defaultPermissions {
		var existing db_models.Permission
		err := db.Where("key = ?", perm.Key).First(&existing).Error
		if err == nil {
			continue
		}
		p := perm
		if err := db.Create(&p).Error; err != nil {
			log.Printf("seed permission %s: %v", perm.Key, err)
		}
	}

	for role, keys := range defaultRoleGrants {
		for _, key := range keys {
			var perm db_models.Permission
			if err := db.Where("key = ?", key).First(&perm).Error; err != nil {
				continue
			}
			var existing db_models.RolePermission
			err := db.Where("role = ? AND permission_id = ?", role, perm.ID).First(&existing).Error
			if err == nil {
				continue
			}
			rp := db_models.RolePermission{Role: role, PermissionID: perm.ID}
			if err := db.Create(&rp).Error; err != nil {
				log.Printf("seed role grant %s/%s: %v", role, key, err)
			}
		}
	}
}
