package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type InvoiceRepositoryInterface interface {
	Insert(ctx context.Context, invoice *db_models.Invoice) error
	FindByNumber(ctx context.Context, number string) (*db_models.Invoice, error)
	UpdateStatus(ctx context.Context, number string, status db_models.InvoiceStatus, providerRef string) error
}

func NewInvoiceRepository(db *gorm.DB) InvoiceRepositoryInterface {
	return &InvoiceRepository{db: db}
}

type InvoiceRepository struct {
	db *gorm.DB
}

func (i *InvoiceRepository) Insert(ctx context.Context, invoice *db_models.Invoice) error {
	return i.db.WithContext(ctx).Create(invoice).Error
}

func (i *InvoiceRepository) FindByNumber(ctx context.Context, number string) (*db_models.Invoice, error) {
	var invoice db_models.Invoice
	err := i.db.WithContext(ctx).
		Where("invoice_number = ?", number).
		First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func (i *InvoiceRepository) UpdateStatus(ctx context.Context, number string, status db_models.InvoiceStatus, providerRef string) error {
	updates := map[string]interface{}{"status": status}
	if providerRef != "" {
		updates["provider_ref"] = providerRef
	}
	return i.db.WithContext(ctx).
		Model(&db_models.Invoice{}).
		Where("invoice_number = ?", number).
		Updates(updates).Error
}
