package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

// AuditRepository is append-only; there are deliberately no update or
// delete methods.
type AuditRepositoryInterface interface {
	Insert(ctx context.Context, entry *db_models.AuditLog) error
	ListForEntity(ctx context.Context, entityType, entityID string) ([]db_models.AuditLog, error)
}

func NewAuditRepository(db *gorm.DB) AuditRepositoryInterface {
	return &AuditRepository{db: db}
}

type AuditRepository struct {
	db *gorm.DB
}

func (a *AuditRepository) Insert(ctx context.Context, entry *db_models.AuditLog) error {
	return a.db.WithContext(ctx).Create(entry).Error
}

func (a *AuditRepository) ListForEntity(ctx context.Context, entityType, entityID string) ([]db_models.AuditLog, error) {
	var entries []db_models.AuditLog
	err := a.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
