package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripdesk/internal/models/db_models"
)

type FeatureFlagRepositoryInterface interface {
	ListForTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.FeatureFlag, error)
	Upsert(ctx context.Context, flag *db_models.FeatureFlag) error
}

func NewFeatureFlagRepository(db *gorm.DB) FeatureFlagRepositoryInterface {
	return &FeatureFlagRepository{db: db}
}

type FeatureFlagRepository struct {
	db *gorm.DB
}

func (f *FeatureFlagRepository) ListForTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.FeatureFlag, error) {
	var flags []db_models.FeatureFlag
	err := f.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Find(&flags).Error
	if err != nil {
		return nil, err
	}
	return flags, nil
}

func (f *FeatureFlagRepository) Upsert(ctx context.Context, flag *db_models.FeatureFlag) error {
	return f.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "flag_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_enabled", "updated_at"}),
		}).
		Create(flag).Error
}
