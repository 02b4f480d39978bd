package services

import (
	"context"

	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

// allowedTransitions is the admin-driven booking lifecycle. Anything not
// listed is rejected.
var allowedTransitions = map[db_models.BookingStatus][]db_models.BookingStatus{
	db_models.BookingPending:   {db_models.BookingConfirmed, db_models.BookingCancelled},
	db_models.BookingConfirmed: {db_models.BookingCompleted},
}

type BookingServiceInterface interface {
	// Create records a booking after a successful provider order. The
	// provider call and this write are two independent steps; a failure
	// here leaves the provider order standing (known, uncompensated gap).
	Create(ctx context.Context, userID uuid.UUID, tenantID *uuid.UUID, request request_models.CreateBookingRequest) (*db_models.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*db_models.Booking, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus, actor uuid.UUID) error
}

func NewBookingService(repo repositories.BookingRepositoryInterface, audit AuditServiceInterface) BookingServiceInterface {
	return &BookingService{repo: repo, audit: audit}
}

type BookingService struct {
	repo  repositories.BookingRepositoryInterface
	audit AuditServiceInterface
}

func (b *BookingService) Create(ctx context.Context, userID uuid.UUID, tenantID *uuid.UUID, request request_models.CreateBookingRequest) (*db_models.Booking, error) {
	bookingType := db_models.BookingType(request.BookingType)
	switch bookingType {
	case db_models.BookingFlight, db_models.BookingHotel, db_models.BookingCar,
		db_models.BookingTour, db_models.BookingTransfer:
	default:
		return nil, utils.ValidationError("unknown booking type %q", request.BookingType)
	}
	if len(request.Details) == 0 {
		return nil, utils.ValidationError("details payload is required")
	}

	paymentStatus := request.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = "unpaid"
	}

	booking := &db_models.Booking{
		UserID:             userID,
		TenantID:           tenantID,
		BookingType:        bookingType,
		Status:             db_models.BookingPending,
		PaymentStatus:      paymentStatus,
		TotalPrice:         request.TotalPrice,
		Currency:           request.Currency,
		Details:            []byte(request.Details),
		ProviderOrderID:    request.ProviderOrderID,
		ConfirmationNumber: request.ConfirmationNumber,
	}
	if err := b.repo.Insert(ctx, booking); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return booking, nil
}

func (b *BookingService) Get(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	booking, err := b.repo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if booking == nil {
		return nil, utils.ErrNotFound
	}
	return booking, nil
}

func (b *BookingService) ListForUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	bookings, err := b.repo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return bookings, nil
}

func (b *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus, actor uuid.UUID) error {
	booking, err := b.repo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if booking == nil {
		return utils.ErrNotFound
	}

	if !transitionAllowed(booking.Status, status) {
		return utils.ErrInvalidTransition
	}

	if err := b.repo.UpdateStatus(ctx, id, status); err != nil {
		return utils.ErrDatabaseError
	}

	after := *booking
	after.Status = status
	b.audit.Record(ctx, actor, "booking.update_status", "booking", id.String(), booking, &after)
	return nil
}

func transitionAllowed(from, to db_models.BookingStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
