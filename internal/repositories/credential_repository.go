package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type CredentialRepositoryInterface interface {
	// ActiveKey returns the stored credential for a provider service.
	// Called on every proxy invocation; secrets are never cached.
	ActiveKey(ctx context.Context, service string) (string, error)
	ActiveEndpoint(ctx context.Context, service string) (string, error)
}

func NewCredentialRepository(db *gorm.DB) CredentialRepositoryInterface {
	return &CredentialRepository{db: db}
}

type CredentialRepository struct {
	db *gorm.DB
}

func (c *CredentialRepository) ActiveKey(ctx context.Context, service string) (string, error) {
	var key db_models.APIKey
	err := c.db.WithContext(ctx).Where("service = ?", service).First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return key.KeyValue, nil
}

func (c *CredentialRepository) ActiveEndpoint(ctx context.Context, service string) (string, error) {
	var endpoint db_models.ServiceEndpoint
	err := c.db.WithContext(ctx).
		Where("service = ? AND status = 'active'", service).
		First(&endpoint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return endpoint.BaseURL, nil
}
