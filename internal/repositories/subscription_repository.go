package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripdesk/internal/models/db_models"
)

type SubscriptionRepositoryInterface interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*db_models.Subscription, error)
	Upsert(ctx context.Context, sub *db_models.Subscription) error
	UpdateStatus(ctx context.Context, tenantID uuid.UUID, status db_models.SubscriptionStatus) error
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &SubscriptionRepository{db: db}
}

type SubscriptionRepository struct {
	db *gorm.DB
}

func (s *SubscriptionRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionRepository) Upsert(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tenant_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"plan_id", "status", "billing_cycle",
				"current_period_start", "current_period_end", "trial_ends_at",
				"metadata", "updated_at",
			}),
		}).
		Create(sub).Error
}

func (s *SubscriptionRepository) UpdateStatus(ctx context.Context, tenantID uuid.UUID, status db_models.SubscriptionStatus) error {
	return s.db.WithContext(ctx).
		Model(&db_models.Subscription{}).
		Where("tenant_id = ?", tenantID).
		Update("status", status).Error
}
