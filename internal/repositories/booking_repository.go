package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripdesk/internal/models/db_models"
)

type BookingRepositoryInterface interface {
	Insert(ctx context.Context, booking *db_models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error
}

func NewBookingRepository(db *gorm.DB) BookingRepositoryInterface {
	return &BookingRepository{db: db}
}

type BookingRepository struct {
	db *gorm.DB
}

func (b *BookingRepository) Insert(ctx context.Context, booking *db_models.Booking) error {
	return b.db.WithContext(ctx).Create(booking).Error
}

func (b *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	var booking db_models.Booking
	err := b.db.WithContext(ctx).First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (b *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var bookings []db_models.Booking
	err := b.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scopes(func(db *gorm.DB) *gorm.DB {
			offset := (page - 1) * pageSize
			return db.Offset(offset).Limit(pageSize)
		}).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (b *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error {
	return b.db.WithContext(ctx).
		Model(&db_models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error
}
