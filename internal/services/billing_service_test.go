package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

func billingFixture() (*fakePlanRepo, *fakeSubscriptionRepo, *fakeInvoiceRepo, *fakeFlagRepo, *stubAudit, BillingServiceInterface) {
	pro := &db_models.Plan{
		Slug:         "pro",
		Name:         "Pro",
		PriceMonthly: 9900,
		PriceYearly:  99000,
		Currency:     "SAR",
		Features:     datatypes.JSON(`["flights","hotels","transfers"]`),
		IsActive:     true,
	}
	pro.ID = uuid.New()

	plans := &fakePlanRepo{plans: map[string]*db_models.Plan{"pro": pro}}
	subs := newFakeSubscriptionRepo()
	invoices := newFakeInvoiceRepo()
	flags := newFakeFlagRepo()
	audit := &stubAudit{}

	return plans, subs, invoices, flags, audit, NewBillingService(plans, subs, invoices, flags, audit)
}

func tenantContext(tenantID uuid.UUID) *response_models.ResolvedTenant {
	tenant := &db_models.Tenant{Status: db_models.TenantActive}
	tenant.ID = tenantID
	return &response_models.ResolvedTenant{Mode: response_models.ModeTenant, Tenant: tenant}
}

func TestCheckoutCreatesPendingInvoiceAndSyncsFlags(t *testing.T) {
	_, _, invoices, flags, audit, svc := billingFixture()
	tenantID := uuid.New()

	out, err := svc.Checkout(context.Background(), tenantID, request_models.CheckoutRequest{
		PlanSlug:     "pro",
		BillingCycle: "yearly",
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, int64(99000), out.AmountMinor, "yearly cycle bills the yearly price")
	assert.Equal(t, "SAR", out.Currency)

	invoice := invoices.invoices[out.InvoiceNumber]
	require.NotNil(t, invoice)
	assert.Equal(t, db_models.InvoicePending, invoice.Status)
	assert.Equal(t, db_models.CycleYearly, invoice.BillingCycle)

	tenantFlags := flags.flags[tenantID]
	require.Len(t, tenantFlags, 3)
	for _, flag := range tenantFlags {
		assert.True(t, flag.IsEnabled)
	}

	assert.Contains(t, audit.records, "billing.checkout")
}

func TestCheckoutRejectsUnknownCycle(t *testing.T) {
	_, _, _, _, _, svc := billingFixture()

	_, err := svc.Checkout(context.Background(), uuid.New(), request_models.CheckoutRequest{
		PlanSlug:     "pro",
		BillingCycle: "weekly",
	}, uuid.New())

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestCheckoutUnknownPlan(t *testing.T) {
	_, _, _, _, _, svc := billingFixture()

	_, err := svc.Checkout(context.Background(), uuid.New(), request_models.CheckoutRequest{
		PlanSlug:     "enterprise",
		BillingCycle: "monthly",
	}, uuid.New())

	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestCheckAccessMatrix(t *testing.T) {
	now := time.Now()
	tenantID := uuid.New()

	cases := []struct {
		name     string
		resolved *response_models.ResolvedTenant
		enforce  bool
		sub      *db_models.Subscription
		wantErr  error
	}{
		{
			name:     "platform mode always passes",
			resolved: &response_models.ResolvedTenant{Mode: response_models.ModePlatform},
			enforce:  true,
		},
		{
			name:     "enforcement off passes without subscription",
			resolved: tenantContext(tenantID),
			enforce:  false,
		},
		{
			name:     "no subscription lapses",
			resolved: tenantContext(tenantID),
			enforce:  true,
			wantErr:  utils.ErrSubscriptionLapsed,
		},
		{
			name:     "active current period passes",
			resolved: tenantContext(tenantID),
			enforce:  true,
			sub: &db_models.Subscription{
				TenantID:         tenantID,
				Status:           db_models.SubStatusActive,
				CurrentPeriodEnd: now.Add(24 * time.Hour),
			},
		},
		{
			name:     "trial current period passes",
			resolved: tenantContext(tenantID),
			enforce:  true,
			sub: &db_models.Subscription{
				TenantID:         tenantID,
				Status:           db_models.SubStatusTrial,
				CurrentPeriodEnd: now.Add(24 * time.Hour),
			},
		},
		{
			name:     "active expired period lapses",
			resolved: tenantContext(tenantID),
			enforce:  true,
			sub: &db_models.Subscription{
				TenantID:         tenantID,
				Status:           db_models.SubStatusActive,
				CurrentPeriodEnd: now.Add(-time.Hour),
			},
			wantErr: utils.ErrSubscriptionLapsed,
		},
		{
			name:     "canceled lapses even with future period",
			resolved: tenantContext(tenantID),
			enforce:  true,
			sub: &db_models.Subscription{
				TenantID:         tenantID,
				Status:           db_models.SubStatusCanceled,
				CurrentPeriodEnd: now.Add(24 * time.Hour),
			},
			wantErr: utils.ErrSubscriptionLapsed,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, subs, _, _, _, svc := billingFixture()
			if tc.sub != nil {
				subs.subs[tc.sub.TenantID] = tc.sub
			}

			err := svc.CheckAccess(context.Background(), tc.resolved, tc.enforce)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentCallbackActivatesSubscription(t *testing.T) {
	plans, subs, invoices, _, _, svc := billingFixture()
	tenantID := uuid.New()
	planID := plans.plans["pro"].ID

	invoices.invoices["INV-1"] = &db_models.Invoice{
		TenantID:      tenantID,
		InvoiceNumber: "INV-1",
		Status:        db_models.InvoicePending,
		PlanID:        &planID,
		BillingCycle:  db_models.CycleYearly,
	}

	err := svc.HandlePaymentCallback(context.Background(), request_models.PaymentCallbackRequest{
		InvoiceNumber: "INV-1",
		Status:        "paid",
		ProviderRef:   "pay_abc",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.InvoicePaid, invoices.invoices["INV-1"].Status)

	sub := subs.subs[tenantID]
	require.NotNil(t, sub)
	assert.Equal(t, db_models.SubStatusActive, sub.Status)
	assert.Equal(t, planID, sub.PlanID)
	assert.WithinDuration(t, time.Now().AddDate(1, 0, 0), sub.CurrentPeriodEnd, time.Minute)
}

func TestPaymentCallbackFailedDoesNotActivate(t *testing.T) {
	_, subs, invoices, _, _, svc := billingFixture()
	tenantID := uuid.New()

	invoices.invoices["INV-2"] = &db_models.Invoice{
		TenantID:      tenantID,
		InvoiceNumber: "INV-2",
		Status:        db_models.InvoicePending,
	}

	err := svc.HandlePaymentCallback(context.Background(), request_models.PaymentCallbackRequest{
		InvoiceNumber: "INV-2",
		Status:        "failed",
	})
	require.NoError(t, err)

	assert.Equal(t, db_models.InvoiceFailed, invoices.invoices["INV-2"].Status)
	assert.Nil(t, subs.subs[tenantID])
}

func TestPaymentCallbackRejectsUnknownStatus(t *testing.T) {
	_, _, invoices, _, _, svc := billingFixture()
	invoices.invoices["INV-3"] = &db_models.Invoice{InvoiceNumber: "INV-3", Status: db_models.InvoicePending}

	err := svc.HandlePaymentCallback(context.Background(), request_models.PaymentCallbackRequest{
		InvoiceNumber: "INV-3",
		Status:        "settled",
	})

	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestPaymentCallbackUnknownInvoice(t *testing.T) {
	_, _, _, _, _, svc := billingFixture()

	err := svc.HandlePaymentCallback(context.Background(), request_models.PaymentCallbackRequest{
		InvoiceNumber: "INV-404",
		Status:        "paid",
	})

	assert.ErrorIs(t, err, utils.ErrNotFound)
}
