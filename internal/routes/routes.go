package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/quickfixx-site/internal/audit"
	"github.com/BruksfildServices01/quickfixx-site/internal/config"
	"github.com/BruksfildServices01/quickfixx-site/internal/handlers"
	infraRepo "github.com/BruksfildServices01/quickfixx-site/internal/infra/repository"
	"github.com/BruksfildServices01/quickfixx-site/internal/media"
	"github.com/BruksfildServices01/quickfixx-site/internal/middleware"
	"github.com/BruksfildServices01/quickfixx-site/internal/session"
	"github.com/BruksfildServices01/quickfixx-site/internal/validators"
)

// Deps are the long-lived services shared by every handler. Audit and Media
// may be nil.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Sessions *session.Manager
	Audit    *audit.Dispatcher
	Media    media.Store
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	validators.Register()

	// ======================================================
	// INFRA
	// ======================================================
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	packageRepo := infraRepo.NewPackageGormRepository(d.DB)
	staffRepo := infraRepo.NewStaffGormRepository(d.DB)
	galleryRepo := infraRepo.NewGalleryGormRepository(d.DB)
	testimonialRepo := infraRepo.NewTestimonialGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	contactRepo := infraRepo.NewContactInfoGormRepository(d.DB)
	brandingRepo := infraRepo.NewBrandingGormRepository(d.DB)
	adminRepo := infraRepo.NewAdminUserGormRepository(d.DB)
	staffUserRepo := infraRepo.NewStaffUserGormRepository(d.DB)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(adminRepo, d.Sessions, d.Config, d.Audit)
	staffAccountHandler := handlers.NewStaffAccountHandler(staffUserRepo, d.Audit)

	serviceHandler := handlers.NewServiceHandler(serviceRepo, d.Audit)
	packageHandler := handlers.NewPackageHandler(packageRepo, d.Audit)
	staffHandler := handlers.NewStaffHandler(staffRepo, d.Audit)
	galleryHandler := handlers.NewGalleryHandler(galleryRepo, d.Audit)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialRepo, d.Audit)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, d.Audit)
	siteHandler := handlers.NewSiteHandler(contactRepo, brandingRepo, d.Config.DefaultBrandName, d.Audit)

	publicHandler := handlers.NewPublicHandler(d.Config.QRSize)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)
	uploadHandler := handlers.NewUploadHandler(d.Media, d.Audit)

	requireAdmin := middleware.AuthMiddleware(d.Sessions, adminRepo, d.Config.SessionCookie)
	optionalAdmin := middleware.OptionalAuth(d.Sessions, adminRepo, d.Config.SessionCookie)

	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.POST("/register", optionalAdmin, authHandler.Register)
			auth.GET("/me", requireAdmin, authHandler.Me)
			auth.PATCH("/change-password", requireAdmin, authHandler.ChangePassword)
		}

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.Get)

		api.GET("/packages", packageHandler.List)
		api.GET("/packages/:id", packageHandler.Get)

		api.GET("/staff", staffHandler.List)
		api.GET("/staff/:id", staffHandler.Get)
		api.GET("/staff/employee/:employeeId", staffHandler.GetByEmployeeID)

		api.GET("/gallery", galleryHandler.List)
		api.GET("/gallery/:id", galleryHandler.Get)

		api.GET("/testimonials", testimonialHandler.List)
		api.GET("/testimonials/:id", testimonialHandler.Get)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/search/phone/:phone", bookingHandler.SearchByPhone)

		api.GET("/contact", siteHandler.GetContact)
		api.GET("/branding", siteHandler.GetBranding)

		api.GET("/qr/staff/:employeeId", publicHandler.StaffQRCode)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("")
		secured.Use(requireAdmin)
		{
			secured.GET("/staff-accounts", staffAccountHandler.List)
			secured.POST("/staff-accounts", staffAccountHandler.Create)
			secured.DELETE("/staff-accounts/:id", staffAccountHandler.Delete)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			secured.POST("/packages", packageHandler.Create)
			secured.PATCH("/packages/:id", packageHandler.Update)
			secured.DELETE("/packages/:id", packageHandler.Delete)

			secured.POST("/staff", staffHandler.Create)
			secured.PATCH("/staff/:id", staffHandler.Update)
			secured.DELETE("/staff/:id", staffHandler.Delete)

			secured.POST("/gallery", galleryHandler.Create)
			secured.PATCH("/gallery/:id", galleryHandler.Update)
			secured.DELETE("/gallery/:id", galleryHandler.Delete)

			secured.POST("/testimonials", testimonialHandler.Create)
			secured.PATCH("/testimonials/:id", testimonialHandler.Update)
			secured.DELETE("/testimonials/:id", testimonialHandler.Delete)

			secured.GET("/bookings", bookingHandler.List)
			secured.GET("/bookings/statuses", bookingHandler.Statuses)
			secured.GET("/bookings/:id", bookingHandler.Get)
			secured.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)

			secured.PATCH("/contact", siteHandler.UpdateContact)
			secured.PATCH("/branding", siteHandler.UpdateBranding)

			secured.GET("/audit-logs", auditLogsHandler.List)
			secured.POST("/uploads", uploadHandler.Upload)
		}
	}
}
