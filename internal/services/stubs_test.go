package services

import (
	"context"

	"github.com/google/uuid"

	"tripdesk/internal/models/db_models"
)

// staticTokenSource bypasses the OAuth2 grant in adapter tests.
type staticTokenSource struct{ token string }

func (s staticTokenSource) Token(ctx context.Context) (string, error) {
	return s.token, nil
}

// stubAudit records invocations without touching storage.
type stubAudit struct {
	records []string
}

func (a *stubAudit) Record(ctx context.Context, actor uuid.UUID, action, entityType, entityID string, before, after interface{}) {
	a.records = append(a.records, action)
}

func (a *stubAudit) History(ctx context.Context, entityType, entityID string) ([]db_models.AuditLog, error) {
	return nil, nil
}

type fakeCredentialRepo struct {
	keys      map[string]string
	endpoints map[string]string
	keyCalls  int
}

func (f *fakeCredentialRepo) ActiveKey(ctx context.Context, service string) (string, error) {
	f.keyCalls++
	return f.keys[service], nil
}

func (f *fakeCredentialRepo) ActiveEndpoint(ctx context.Context, service string) (string, error) {
	return f.endpoints[service], nil
}

type fakeTenantRepo struct {
	tenants   map[uuid.UUID]*db_models.Tenant
	bySlug    map[string]*db_models.Tenant
	domains   map[string]*db_models.TenantDomain
	brandings map[uuid.UUID]*db_models.TenantBranding
	inserted  []*db_models.Tenant
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:   map[uuid.UUID]*db_models.Tenant{},
		bySlug:    map[string]*db_models.Tenant{},
		domains:   map[string]*db_models.TenantDomain{},
		brandings: map[uuid.UUID]*db_models.TenantBranding{},
	}
}

func (f *fakeTenantRepo) Insert(ctx context.Context, tenant *db_models.Tenant) error {
	tenant.ID = uuid.New()
	f.tenants[tenant.ID] = tenant
	f.bySlug[tenant.Slug] = tenant
	f.inserted = append(f.inserted, tenant)
	return nil
}

func (f *fakeTenantRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Tenant, error) {
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) FindActiveBySlug(ctx context.Context, slug string) (*db_models.Tenant, error) {
	tenant := f.bySlug[slug]
	if tenant == nil || tenant.Status == db_models.TenantSuspended {
		return nil, nil
	}
	return tenant, nil
}

func (f *fakeTenantRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TenantStatus) error {
	if tenant := f.tenants[id]; tenant != nil {
		tenant.Status = status
	}
	return nil
}

func (f *fakeTenantRepo) FindVerifiedDomain(ctx context.Context, host string) (*db_models.TenantDomain, error) {
	domain := f.domains[host]
	if domain == nil || !domain.Verified {
		return nil, nil
	}
	return domain, nil
}

func (f *fakeTenantRepo) AddDomain(ctx context.Context, domain *db_models.TenantDomain) error {
	domain.ID = uuid.New()
	f.domains[domain.Domain] = domain
	return nil
}

func (f *fakeTenantRepo) SetDomainVerified(ctx context.Context, domainID uuid.UUID, verified bool) error {
	for _, domain := range f.domains {
		if domain.ID == domainID {
			domain.Verified = verified
		}
	}
	return nil
}

func (f *fakeTenantRepo) GetBranding(ctx context.Context, tenantID uuid.UUID) (*db_models.TenantBranding, error) {
	return f.brandings[tenantID], nil
}

func (f *fakeTenantRepo) UpsertBranding(ctx context.Context, branding *db_models.TenantBranding) error {
	f.brandings[branding.TenantID] = branding
	return nil
}

type fakeFlagRepo struct {
	flags map[uuid.UUID][]db_models.FeatureFlag
}

func newFakeFlagRepo() *fakeFlagRepo {
	return &fakeFlagRepo{flags: map[uuid.UUID][]db_models.FeatureFlag{}}
}

func (f *fakeFlagRepo) ListForTenant(ctx context.Context, tenantID uuid.UUID) ([]db_models.FeatureFlag, error) {
	return f.flags[tenantID], nil
}

func (f *fakeFlagRepo) Upsert(ctx context.Context, flag *db_models.FeatureFlag) error {
	rows := f.flags[flag.TenantID]
	for i := range rows {
		if rows[i].FlagKey == flag.FlagKey {
			rows[i].IsEnabled = flag.IsEnabled
			return nil
		}
	}
	f.flags[flag.TenantID] = append(rows, *flag)
	return nil
}

type fakePermissionRepo struct {
	catalog      []db_models.Permission
	roles        map[uuid.UUID][]db_models.Role
	grants       map[db_models.Role][]db_models.Permission
	listCalls    int
	catalogCalls int
}

func (f *fakePermissionRepo) ListCatalog(ctx context.Context) ([]db_models.Permission, error) {
	f.catalogCalls++
	return f.catalog, nil
}

func (f *fakePermissionRepo) ListRolesForUser(ctx context.Context, userID uuid.UUID) ([]db_models.Role, error) {
	f.listCalls++
	return f.roles[userID], nil
}

func (f *fakePermissionRepo) ListPermissionsForRoles(ctx context.Context, roles []db_models.Role) ([]db_models.Permission, error) {
	seen := map[string]bool{}
	var perms []db_models.Permission
	for _, role := range roles {
		for _, perm := range f.grants[role] {
			if !seen[perm.Key] {
				seen[perm.Key] = true
				perms = append(perms, perm)
			}
		}
	}
	return perms, nil
}

func (f *fakePermissionRepo) InsertUserRole(ctx context.Context, userRole *db_models.UserRole) error {
	if f.roles == nil {
		f.roles = map[uuid.UUID][]db_models.Role{}
	}
	f.roles[userRole.UserID] = append(f.roles[userRole.UserID], userRole.Role)
	return nil
}

func (f *fakePermissionRepo) DeleteUserRole(ctx context.Context, userID uuid.UUID, role db_models.Role) error {
	kept := f.roles[userID][:0]
	for _, r := range f.roles[userID] {
		if r != role {
			kept = append(kept, r)
		}
	}
	f.roles[userID] = kept
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*db_models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[uuid.UUID]*db_models.Booking{}}
}

func (f *fakeBookingRepo) Insert(ctx context.Context, booking *db_models.Booking) error {
	booking.ID = uuid.New()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, page, pageSize int) ([]db_models.Booking, error) {
	var out []db_models.Booking
	for _, booking := range f.bookings {
		if booking.UserID == userID {
			out = append(out, *booking)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.BookingStatus) error {
	if booking := f.bookings[id]; booking != nil {
		booking.Status = status
	}
	return nil
}

type fakePlanRepo struct {
	plans map[string]*db_models.Plan
}

func (f *fakePlanRepo) ListActive(ctx context.Context) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, plan := range f.plans {
		out = append(out, *plan)
	}
	return out, nil
}

func (f *fakePlanRepo) FindBySlug(ctx context.Context, slug string) (*db_models.Plan, error) {
	return f.plans[slug], nil
}

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*db_models.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uuid.UUID]*db_models.Subscription{}}
}

func (f *fakeSubscriptionRepo) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*db_models.Subscription, error) {
	return f.subs[tenantID], nil
}

func (f *fakeSubscriptionRepo) Upsert(ctx context.Context, sub *db_models.Subscription) error {
	f.subs[sub.TenantID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) UpdateStatus(ctx context.Context, tenantID uuid.UUID, status db_models.SubscriptionStatus) error {
	if sub := f.subs[tenantID]; sub != nil {
		sub.Status = status
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*db_models.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*db_models.Invoice{}}
}

func (f *fakeInvoiceRepo) Insert(ctx context.Context, invoice *db_models.Invoice) error {
	invoice.ID = uuid.New()
	f.invoices[invoice.InvoiceNumber] = invoice
	return nil
}

func (f *fakeInvoiceRepo) FindByNumber(ctx context.Context, number string) (*db_models.Invoice, error) {
	return f.invoices[number], nil
}

func (f *fakeInvoiceRepo) UpdateStatus(ctx context.Context, number string, status db_models.InvoiceStatus, providerRef string) error {
	if invoice := f.invoices[number]; invoice != nil {
		invoice.Status = status
	}
	return nil
}
