package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/repositories"
)

// AuditServiceInterface records privileged mutations. Failures are logged
// and swallowed: an audit write must never fail the mutation it describes.
type AuditServiceInterface interface {
	Record(ctx context.Context, actor uuid.UUID, action, entityType, entityID string, before, after interface{})
	History(ctx context.Context, entityType, entityID string) ([]db_models.AuditLog, error)
}

func NewAuditService(repo repositories.AuditRepositoryInterface) AuditServiceInterface {
	return &AuditService{repo: repo}
}

type AuditService struct {
	repo repositories.AuditRepositoryInterface
}

func (a *AuditService) Record(ctx context.Context, actor uuid.UUID, action, entityType, entityID string, before, after interface{}) {
	entry := &db_models.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actor,
		Before:     marshalSnapshot(before),
		After:      marshalSnapshot(after),
	}

	if err := a.repo.Insert(ctx, entry); err != nil {
		log.Printf("audit write failed for %s %s/%s: %v", action, entityType, entityID, err)
	}
}

func (a *AuditService) History(ctx context.Context, entityType, entityID string) ([]db_models.AuditLog, error) {
	return a.repo.ListForEntity(ctx, entityType, entityID)
}

func marshalSnapshot(v interface{}) []byte {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
