package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type PlanRepositoryInterface interface {
	ListActive(ctx context.Context) ([]db_models.Plan, error)
	FindBySlug(ctx context.Context, slug string) (*db_models.Plan, error)
}

func NewPlanRepository(db *gorm.DB) PlanRepositoryInterface {
	return &PlanRepository{db: db}
}

type PlanRepository struct {
	db *gorm.DB
}

func (p *PlanRepository) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("price_monthly ASC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *PlanRepository) FindBySlug(ctx context.Context, slug string) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).
		Where("slug = ? AND is_active = TRUE", slug).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}
