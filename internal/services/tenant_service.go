package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"tripdesk/internal/models/db_models"
	"tripdesk/internal/models/request_models"
	"tripdesk/internal/models/response_models"
	"tripdesk/internal/repositories"
	"tripdesk/pkg/utils"
)

type TenantServiceInterface interface {
	// Resolve runs the tenancy state machine: verified domain first, then
	// a /t/{slug} path prefix, otherwise platform mode.
	Resolve(ctx context.Context, host, path string) (*response_models.ResolvedTenant, error)
	IsFeatureEnabled(resolved *response_models.ResolvedTenant, key string) bool

	CreateTenant(ctx context.Context, request request_models.CreateTenantRequest, actor uuid.UUID) (*db_models.Tenant, error)
	SetStatus(ctx context.Context, tenantID uuid.UUID, status db_models.TenantStatus, actor uuid.UUID) error
	UpsertBranding(ctx context.Context, tenantID uuid.UUID, request request_models.UpsertBrandingRequest) (*db_models.TenantBranding, error)
	SetFeatureFlag(ctx context.Context, tenantID uuid.UUID, request request_models.SetFeatureFlagRequest, actor uuid.UUID) error
	AddDomain(ctx context.Context, tenantID uuid.UUID, domain string) (*db_models.TenantDomain, error)
	VerifyDomain(ctx context.Context, domainID uuid.UUID, verified bool, actor uuid.UUID) error
}

func NewTenantService(
	tenants repositories.TenantRepositoryInterface,
	flags repositories.FeatureFlagRepositoryInterface,
	audit AuditServiceInterface,
) TenantServiceInterface {
	return &TenantService{
		tenants: tenants,
		flags:   flags,
		audit:   audit,
	}
}

type TenantService struct {
	tenants repositories.TenantRepositoryInterface
	flags   repositories.FeatureFlagRepositoryInterface
	audit   AuditServiceInterface
}

func (t *TenantService) Resolve(ctx context.Context, host, path string) (*response_models.ResolvedTenant, error) {
	if host != "" {
		if idx := strings.IndexByte(host, ':'); idx >= 0 {
			host = host[:idx]
		}
		domain, err := t.tenants.FindVerifiedDomain(ctx, host)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if domain != nil {
			tenant, err := t.tenants.FindByID(ctx, domain.TenantID)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			if tenant != nil {
				return t.loadContext(ctx, tenant)
			}
		}
	}

	if tenantSlug := slugFromPath(path); tenantSlug != "" {
		tenant, err := t.tenants.FindActiveBySlug(ctx, tenantSlug)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if tenant != nil {
			return t.loadContext(ctx, tenant)
		}
		// A /t/ prefix that names no active tenant resolves to platform
		// mode rather than an error.
	}

	return &response_models.ResolvedTenant{Mode: response_models.ModePlatform}, nil
}

func slugFromPath(path string) string {
	if !strings.HasPrefix(path, "/t/") {
		return ""
	}
	rest := strings.TrimPrefix(path, "/t/")
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		rest = rest[:idx]
	}
	return rest
}

func (t *TenantService) loadContext(ctx context.Context, tenant *db_models.Tenant) (*response_models.ResolvedTenant, error) {
	branding, err := t.tenants.GetBranding(ctx, tenant.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	rows, err := t.flags.ListForTenant(ctx, tenant.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	flags := make(map[string]bool, len(rows))
	for _, row := range rows {
		flags[row.FlagKey] = row.IsEnabled
	}

	return &response_models.ResolvedTenant{
		Mode:     response_models.ModeTenant,
		Tenant:   tenant,
		Branding: branding,
		Flags:    flags,
	}, nil
}

// IsFeatureEnabled is allow-all in platform mode and default-deny once a
// tenant context exists: only an explicit enabled row passes.
func (t *TenantService) IsFeatureEnabled(resolved *response_models.ResolvedTenant, key string) bool {
	if resolved.PlatformMode() {
		return true
	}
	return resolved.Flags[key]
}

func (t *TenantService) CreateTenant(ctx context.Context, request request_models.CreateTenantRequest, actor uuid.UUID) (*db_models.Tenant, error) {
	if request.Name == "" {
		return nil, utils.ValidationError("name is required")
	}

	tenant := &db_models.Tenant{
		Name:         request.Name,
		Slug:         slug.Make(request.Name),
		Status:       db_models.TenantTrial,
		Plan:         request.Plan,
		OwnerID:      request.OwnerID,
		ContactEmail: request.ContactEmail,
		ContactPhone: request.ContactPhone,
	}
	if err := t.tenants.Insert(ctx, tenant); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.audit.Record(ctx, actor, "tenant.create", "tenant", tenant.ID.String(), nil, tenant)
	return tenant, nil
}

func (t *TenantService) SetStatus(ctx context.Context, tenantID uuid.UUID, status db_models.TenantStatus, actor uuid.UUID) error {
	switch status {
	case db_models.TenantActive, db_models.TenantSuspended, db_models.TenantTrial:
	default:
		return utils.ValidationError("unknown tenant status %q", status)
	}

	before, err := t.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if before == nil {
		return utils.ErrNotFound
	}

	if err := t.tenants.UpdateStatus(ctx, tenantID, status); err != nil {
		return utils.ErrDatabaseError
	}

	after := *before
	after.Status = status
	t.audit.Record(ctx, actor, "tenant.set_status", "tenant", tenantID.String(), before, &after)
	return nil
}

func (t *TenantService) UpsertBranding(ctx context.Context, tenantID uuid.UUID, request request_models.UpsertBrandingRequest) (*db_models.TenantBranding, error) {
	branding := &db_models.TenantBranding{
		TenantID:       tenantID,
		PrimaryColor:   request.PrimaryColor,
		SecondaryColor: request.SecondaryColor,
		FontFamily:     request.FontFamily,
		LogoURL:        request.LogoURL,
		SupportEmail:   request.SupportEmail,
		SupportPhone:   request.SupportPhone,
		FooterText:     request.FooterText,
		CustomCSS:      request.CustomCSS,
	}
	if err := t.tenants.UpsertBranding(ctx, branding); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return branding, nil
}

func (t *TenantService) SetFeatureFlag(ctx context.Context, tenantID uuid.UUID, request request_models.SetFeatureFlagRequest, actor uuid.UUID) error {
	if request.FlagKey == "" {
		return utils.ValidationError("flag_key is required")
	}

	flag := &db_models.FeatureFlag{
		TenantID:  tenantID,
		FlagKey:   request.FlagKey,
		IsEnabled: request.IsEnabled,
	}
	if err := t.flags.Upsert(ctx, flag); err != nil {
		return utils.ErrDatabaseError
	}

	t.audit.Record(ctx, actor, "tenant.set_feature_flag", "feature_flag", request.FlagKey, nil, flag)
	return nil
}

func (t *TenantService) AddDomain(ctx context.Context, tenantID uuid.UUID, domain string) (*db_models.TenantDomain, error) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return nil, utils.ValidationError("domain is required")
	}

	row := &db_models.TenantDomain{
		TenantID: tenantID,
		Domain:   domain,
	}
	if err := t.tenants.AddDomain(ctx, row); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return row, nil
}

func (t *TenantService) VerifyDomain(ctx context.Context, domainID uuid.UUID, verified bool, actor uuid.UUID) error {
	if err := t.tenants.SetDomainVerified(ctx, domainID, verified); err != nil {
		return utils.ErrDatabaseError
	}

	t.audit.Record(ctx, actor, "tenant.verify_domain", "tenant_domain", domainID.String(), nil, map[string]bool{"verified": verified})
	return nil
}
