package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripdesk/internal/models/db_models"
)

type TenantRepositoryInterface interface {
	Insert(ctx context.Context, tenant *db_models.Tenant) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error)
	FindActiveBySlug(ctx context.Context, slug string) (*db_models.Tenant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TenantStatus) error

	FindVerifiedDomain(ctx context.Context, host string) (*db_models.TenantDomain, error)
	AddDomain(ctx context.Context, domain *db_models.TenantDomain) error
	SetDomainVerified(ctx context.Context, domainID uuid.UUID, verified bool) error

	GetBranding(ctx context.Context, tenantID uuid.UUID) (*db_models.TenantBranding, error)
	UpsertBranding(ctx context.Context, branding *db_models.TenantBranding) error
}

func NewTenantRepository(db *gorm.DB) TenantRepositoryInterface {
	return &TenantRepository{db: db}
}

type TenantRepository struct {
	db *gorm.DB
}

func (t *TenantRepository) Insert(ctx context.Context, tenant *db_models.Tenant) error {
	return t.db.WithContext(ctx).Create(tenant).Error
}

func (t *TenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error) {
	var tenant db_models.Tenant
	err := t.db.WithContext(ctx).First(&tenant, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (t *TenantRepository) FindActiveBySlug(ctx context.Context, slug string) (*db_models.Tenant, error) {
	var tenant db_models.Tenant
	err := t.db.WithContext(ctx).
		Where("slug = ? AND status IN ?", slug, []db_models.TenantStatus{db_models.TenantActive, db_models.TenantTrial}).
		First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tenant, nil
}

func (t *TenantRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TenantStatus) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Tenant{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (t *TenantRepository) FindVerifiedDomain(ctx context.Context, host string) (*db_models.TenantDomain, error) {
	var domain db_models.TenantDomain
	err := t.db.WithContext(ctx).
		Where("domain = ? AND verified = TRUE", host).
		First(&domain).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain, nil
}

func (t *TenantRepository) AddDomain(ctx context.Context, domain *db_models.TenantDomain) error {
	return t.db.WithContext(ctx).Create(domain).Error
}

func (t *TenantRepository) SetDomainVerified(ctx context.Context, domainID uuid.UUID, verified bool) error {
	return t.db.WithContext(ctx).
		Model(&db_models.TenantDomain{}).
		Where("id = ?", domainID).
		Update("verified", verified).Error
}

func (t *TenantRepository) GetBranding(ctx context.Context, tenantID uuid.UUID) (*db_models.TenantBranding, error) {
	var branding db_models.TenantBranding
	err := t.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&branding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &branding, nil
}

// UpsertBranding creates the branding row lazily on first save.
func (t *TenantRepository) UpsertBranding(ctx context.Context, branding *db_models.TenantBranding) error {
	return t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"primary_color", "secondary_color", "font_family", "logo_url",
				"support_email", "support_phone", "footer_text", "custom_css", "updated_at",
			}),
		}).
		Create(branding).Error
}
