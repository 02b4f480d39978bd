package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type BillingServiceInterface interface {
	ListPlans(ctx context.Context) ([]db_models.Plan, error)
	// Checkout creates a pending invoice for the chosen plan and syncs the
	// tenant's feature flags from the plan's feature list.
	Checkout(ctx context.Context, tenantID uuid.UUID, request request_models.CheckoutRequest, actor uuid.UUID) (*response_models.CheckoutResponse, error)
	// CheckAccess implements the paywall gate: nil in platform mode, when
	// enforcement is off, or while the subscription period is current.
	CheckAccess(ctx context.Context, resolved *response_models.ResolvedTenant, enforce bool) error
	// HandlePaymentCallback is the provider-callback placeholder: it moves
	// the invoice and, on payment, activates the subscription period.
	HandlePaymentCallback(ctx context.Context, request request_models.PaymentCallbackRequest) error
}

func NewBillingService(
	plans repositories.PlanRepositoryInterface,
	subscriptions repositories.SubscriptionRepositoryInterface,
	invoices repositories.InvoiceRepositoryInterface,
	flags repositories.FeatureFlagRepositoryInterface,
	audit AuditServiceInterface,
) BillingServiceInterface {
	return &BillingService{
		plans:         plans,
		subscriptions: subscriptions,
		invoices:      invoices,
		flags:         flags,
		audit:         audit,
	}
}

type BillingService struct {
	plans         repositories.PlanRepositoryInterface
	subscriptions repositories.SubscriptionRepositoryInterface
	invoices      repositories.InvoiceRepositoryInterface
	flags         repositories.FeatureFlagRepositoryInterface
	audit         AuditServiceInterface
}

func (b *BillingService) ListPlans(ctx context.Context) ([]db_models.Plan, error) {
	plans, err := b.plans.ListActive(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return plans, nil
}

func (b *BillingService) Checkout(ctx context.Context, tenantID uuid.UUID, request request_models.CheckoutRequest, actor uuid.UUID) (*response_models.CheckoutResponse, error) {
	cycle := db_models.BillingCycle(request.BillingCycle)
	if cycle != db_models.CycleMonthly && cycle != db_models.CycleYearly {
		return nil, utils.ValidationError("billing_cycle must be monthly or yearly")
	}

	plan, err := b.plans.FindBySlug(ctx, request.PlanSlug)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrNotFound
	}

	amount := plan.PriceMonthly
	if cycle == db_models.CycleYearly {
		amount = plan.PriceYearly
	}

	number, err := invoiceNumber()
	if err != nil {
		return nil, err
	}

	invoice := &db_models.Invoice{
		TenantID:      tenantID,
		InvoiceNumber: number,
		AmountMinor:   amount,
		Currency:      plan.Currency,
		Status:        db_models.InvoicePending,
		PlanID:        &plan.ID,
		BillingCycle:  cycle,
	}
	if err := b.invoices.Insert(ctx, invoice); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// The plan's feature list drives the tenant's flags at checkout time.
	if err := b.syncFeatureFlags(ctx, tenantID, plan); err != nil {
		return nil, err
	}

	b.audit.Record(ctx, actor, "billing.checkout", "invoice", invoice.InvoiceNumber, nil, invoice)

	return &response_models.CheckoutResponse{
		InvoiceNumber: invoice.InvoiceNumber,
		AmountMinor:   amount,
		Currency:      plan.Currency,
		PlanSlug:      plan.Slug,
	}, nil
}

func invoiceNumber() (string, error) {
	suffix, err := utils.GenerateSecureToken(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("INV-%d-%s", time.Now().Unix(), suffix), nil
}

func (b *BillingService) syncFeatureFlags(ctx context.Context, tenantID uuid.UUID, plan *db_models.Plan) error {
	var features []string
	if len(plan.Features) > 0 {
		if err := json.Unmarshal(plan.Features, &features); err != nil {
			return utils.ValidationError("plan %s has a malformed feature list", plan.Slug)
		}
	}

	for _, key := range features {
		flag := &db_models.FeatureFlag{
			TenantID:  tenantID,
			FlagKey:   key,
			IsEnabled: true,
		}
		if err := b.flags.Upsert(ctx, flag); err != nil {
			return utils.ErrDatabaseError
		}
	}
	return nil
}

func (b *BillingService) CheckAccess(ctx context.Context, resolved *response_models.ResolvedTenant, enforce bool) error {
	if resolved.PlatformMode() || !enforce {
		return nil
	}

	sub, err := b.subscriptions.FindByTenant(ctx, resolved.Tenant.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if sub == nil {
		return utils.ErrSubscriptionLapsed
	}

	switch sub.Status {
	case db_models.SubStatusActive, db_models.SubStatusTrial:
		if time.Now().Before(sub.CurrentPeriodEnd) {
			return nil
		}
	}
	return utils.ErrSubscriptionLapsed
}

func (b *BillingService) HandlePaymentCallback(ctx context.Context, request request_models.PaymentCallbackRequest) error {
	if request.InvoiceNumber == "" {
		return utils.ValidationError("invoice_number is required")
	}

	invoice, err := b.invoices.FindByNumber(ctx, request.InvoiceNumber)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if invoice == nil {
		return utils.ErrNotFound
	}

	status := db_models.InvoiceStatus(request.Status)
	switch status {
	case db_models.InvoicePaid, db_models.InvoiceFailed, db_models.InvoiceRefunded, db_models.InvoiceVoid:
	default:
		return utils.ValidationError("unknown invoice status %q", request.Status)
	}

	if err := b.invoices.UpdateStatus(ctx, request.InvoiceNumber, status, request.ProviderRef); err != nil {
		return utils.ErrDatabaseError
	}

	if status == db_models.InvoicePaid {
		if err := b.activateSubscription(ctx, invoice); err != nil {
			return err
		}
	}

	b.audit.Record(ctx, uuid.Nil, "billing.payment_callback", "invoice", request.InvoiceNumber, invoice, map[string]string{"status": request.Status})
	return nil
}

func (b *BillingService) activateSubscription(ctx context.Context, invoice *db_models.Invoice) error {
	now := time.Now()
	end := now.AddDate(0, 1, 0)
	if invoice.BillingCycle == db_models.CycleYearly {
		end = now.AddDate(1, 0, 0)
	}

	sub := &db_models.Subscription{
		TenantID:           invoice.TenantID,
		Status:             db_models.SubStatusActive,
		BillingCycle:       invoice.BillingCycle,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   end,
	}
	if invoice.PlanID != nil {
		sub.PlanID = *invoice.PlanID
	}
	if err := b.subscriptions.Upsert(ctx, sub); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
