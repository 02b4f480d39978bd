package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	accountfx "tripdesk/cmd/fx/account_fx"
	auditfx "tripdesk/cmd/fx/audit_fx"
	billingfx "tripdesk/cmd/fx/billing_fx"
	bookingfx "tripdesk/cmd/fx/booking_fx"
	dbfx "tripdesk/cmd/fx/db_fx"
	paymentfx "tripdesk/cmd/fx/payment_fx"
	rbacfx "tripdesk/cmd/fx/rbac_fx"
	tenantfx "tripdesk/cmd/fx/tenant_fx"
	travelfx "tripdesk/cmd/fx/travel_fx"
	"tripdesk/internal/api/controllers"
	"tripdesk/internal/services"
	"tripdesk/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		dbfx.Module,
		auditfx.Module,
		tenantfx.Module,
		rbacfx.Module,
		billingfx.Module,
		bookingfx.Module,
		accountfx.Module,
		travelfx.Module,
		paymentfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tenants services.TenantServiceInterface,
	permissions services.PermissionServiceInterface,
	billing services.BillingServiceInterface,
	travelController *controllers.TravelController,
	paymentController *controllers.PaymentController,
	bookingController *controllers.BookingController,
	tenantController *controllers.TenantController,
	rbacController *controllers.RBACController,
	billingController *controllers.BillingController,
	accountController *controllers.AccountController,
	auditController *controllers.AuditController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TenantResolverMiddleware(tenants))

	RegisterRoutes(r, permissions, billing,
		travelController, paymentController, bookingController,
		tenantController, rbacController, billingController,
		accountController, auditController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	permissions services.PermissionServiceInterface,
	billing services.BillingServiceInterface,
	travelController *controllers.TravelController,
	paymentController *controllers.PaymentController,
	bookingController *controllers.BookingController,
	tenantController *controllers.TenantController,
	rbacController *controllers.RBACController,
	billingController *controllers.BillingController,
	accountController *controllers.AccountController,
	auditController *controllers.AuditController) {

	enforcePaywall := os.Getenv("PAYWALL_ENFORCE") == "true"

	r.GET("/api/travel", travelController.DispatchGet)
	r.POST("/api/travel", travelController.DispatchPost)
	r.POST("/payments/gateway", paymentController.Gateway)
	r.POST("/billing/callback", billingController.PaymentCallback)

	r.GET("/tenants/current", tenantController.Current)
	r.GET("/billing/plans", billingController.ListPlans)

	authGroup := r.Group("/auth")
	authGroup.POST("/signup", accountController.SignUp)
	authGroup.POST("/login", accountController.Login)

	userGroup := r.Group("/", middleware.JWTAuthMiddleware())
	userGroup.POST("/bookings", middleware.PaywallMiddleware(billing, enforcePaywall), bookingController.Create)
	userGroup.GET("/bookings", bookingController.ListMine)
	userGroup.GET("/bookings/:id", bookingController.Get)
	userGroup.POST("/billing/checkout", billingController.Checkout)
	userGroup.GET("/billing/access", billingController.Access)
	userGroup.GET("/rbac/me", rbacController.MyPermissions)

	adminGroup := r.Group("/admin", middleware.JWTAuthMiddleware())
	adminGroup.POST("/tenants", middleware.RequirePermission(permissions, "tenants.manage"), tenantController.Create)
	adminGroup.PATCH("/tenants/:id/status", middleware.RequirePermission(permissions, "tenants.manage"), tenantController.SetStatus)
	adminGroup.PUT("/tenants/:id/branding", middleware.RequirePermission(permissions, "tenants.branding"), tenantController.UpsertBranding)
	adminGroup.PUT("/tenants/:id/flags", middleware.RequirePermission(permissions, "tenants.manage"), tenantController.SetFeatureFlag)
	adminGroup.POST("/tenants/:id/domains", middleware.RequirePermission(permissions, "tenants.manage"), tenantController.AddDomain)
	adminGroup.POST("/tenants/:id/domains/:domainId/verify", middleware.RequirePermission(permissions, "tenants.manage"), tenantController.VerifyDomain)
	adminGroup.PATCH("/bookings/:id/status", middleware.RequirePermission(permissions, "bookings.manage"), bookingController.UpdateStatus)
	adminGroup.GET("/rbac/catalog", middleware.RequirePermission(permissions, "roles.manage"), rbacController.Catalog)
	adminGroup.POST("/rbac/roles", middleware.RequirePermission(permissions, "roles.manage"), rbacController.AssignRole)
	adminGroup.DELETE("/rbac/roles", middleware.RequirePermission(permissions, "roles.manage"), rbacController.RevokeRole)
	adminGroup.GET("/audit", middleware.RequirePermission(permissions, "audit.read"), auditController.History)
}
