package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/easycashflows/api/internal/application/analytics"
	"github.com/easycashflows/api/internal/application/auth"
	"github.com/easycashflows/api/internal/application/backupsvc"
	"github.com/easycashflows/api/internal/application/bankingsvc"
	"github.com/easycashflows/api/internal/application/calendarsync"
	"github.com/easycashflows/api/internal/application/movement"
	"github.com/easycashflows/api/internal/application/notification"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/internal/domain/entity"
)

// RouterDeps dipendenze per il router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	CoreUC         *usecase.CoreUseCase
	ResourceUC     *usecase.ResourceUseCase
	OfficeUC       *usecase.OfficeUseCase
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *usecase.CustomerUseCase
	IBANUC         *usecase.IBANUseCase
	TagUC          *usecase.TagUseCase
	StatusUC       *usecase.StatusUseCase
	ReasonUC       *usecase.ReasonUseCase
	MovementUC     *movement.UseCase
	MovementExport *movement.ExportUseCase
	DashboardUC    *analytics.DashboardUseCase
	AIUC           *usecase.AIUseCase
	CalendarUC     *calendarsync.UseCase
	NotificationUC *notification.UseCase
	BackupUC       *backupsvc.UseCase
	BankingUC      *bankingsvc.UseCase
	SecurityUC     *usecase.SecurityUseCase
	Limiter        *SecurityLimiter
	JWTSecret      string
}

// Router registra le rotte dell'API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(deps.Limiter.Middleware())

	api := app.Group("/api")

	// Auth (pubblico; il login passa dal limiter dedicato)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", deps.Limiter.LoginMiddleware(), authHandler.Login)

	// Callback OAuth dei calendari (pubblico: il provider non manda il Bearer;
	// l'identità dell'utente è dentro lo state firmato)
	calendarHandler := NewCalendarHandler(deps.CalendarUC)
	api.Get("/calendar/:provider/callback", calendarHandler.Callback)

	// Rotte protette (richiedono Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/password", authHandler.ChangePassword)

	// Utenti (gestione riservata agli admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Aziende
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", RequireRole(entity.RoleAdmin), companyHandler.Delete)

	// Anagrafiche: linee di business, collaboratori, sedi
	cores := protected.Group("/cores")
	coreHandler := NewCoreHandler(deps.CoreUC)
	cores.Post("/", coreHandler.Create)
	cores.Get("/", coreHandler.List)
	cores.Get("/:id", coreHandler.GetByID)
	cores.Put("/:id", coreHandler.Update)
	cores.Delete("/:id", coreHandler.Delete)

	resources := protected.Group("/resources")
	resourceHandler := NewResourceHandler(deps.ResourceUC)
	resources.Post("/", resourceHandler.Create)
	resources.Get("/", resourceHandler.List)
	resources.Get("/:id", resourceHandler.GetByID)
	resources.Put("/:id", resourceHandler.Update)
	resources.Delete("/:id", resourceHandler.Delete)

	offices := protected.Group("/offices")
	officeHandler := NewOfficeHandler(deps.OfficeUC)
	offices.Post("/", officeHandler.Create)
	offices.Get("/", officeHandler.List)
	offices.Get("/:id", officeHandler.GetByID)
	offices.Put("/:id", officeHandler.Update)
	offices.Delete("/:id", officeHandler.Delete)

	// Fornitori e clienti
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Conti bancari e collegamento open banking
	ibans := protected.Group("/ibans")
	ibanHandler := NewIBANHandler(deps.IBANUC)
	ibans.Post("/", ibanHandler.Create)
	ibans.Get("/", ibanHandler.List)
	ibans.Get("/:id", ibanHandler.GetByID)
	ibans.Put("/:id", ibanHandler.Update)
	ibans.Delete("/:id", ibanHandler.Delete)
	ibans.Post("/:id/banking", ibanHandler.ConfigureBanking)
	ibans.Delete("/:id/banking", ibanHandler.DisconnectBanking)

	// Etichette, stati, causali
	tags := protected.Group("/tags")
	tagHandler := NewTagHandler(deps.TagUC)
	tags.Post("/", tagHandler.Create)
	tags.Get("/", tagHandler.List)
	tags.Get("/:id", tagHandler.GetByID)
	tags.Put("/:id", tagHandler.Update)
	tags.Delete("/:id", tagHandler.Delete)

	statuses := protected.Group("/statuses")
	statusHandler := NewStatusHandler(deps.StatusUC)
	statuses.Post("/", statusHandler.Create)
	statuses.Get("/", statusHandler.List)
	statuses.Get("/:id", statusHandler.GetByID)
	statuses.Put("/:id", statusHandler.Update)
	statuses.Delete("/:id", statusHandler.Delete)

	reasons := protected.Group("/reasons")
	reasonHandler := NewReasonHandler(deps.ReasonUC)
	reasons.Post("/", reasonHandler.Create)
	reasons.Get("/", reasonHandler.List)
	reasons.Get("/:id", reasonHandler.GetByID)
	reasons.Put("/:id", reasonHandler.Update)
	reasons.Delete("/:id", reasonHandler.Delete)

	// Movimenti finanziari ed esportazioni
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.MovementExport)
	movements.Post("/", movementHandler.Create)
	movements.Get("/", movementHandler.List)
	movements.Get("/totals", movementHandler.Totals)
	movements.Get("/export/pdf", movementHandler.ExportPDF)
	movements.Get("/export/excel", movementHandler.ExportExcel)
	movements.Get("/:id", movementHandler.GetByID)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.Summary)

	// Assistente AI
	ai := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	ai.Post("/fiscal-chat", aiHandler.FiscalChat)
	ai.Post("/insights", aiHandler.MovementInsights)

	// Calendari (integrazioni, eventi, sync)
	calendar := protected.Group("/calendar")
	calendar.Get("/integrations", calendarHandler.Integrations)
	calendar.Post("/events", calendarHandler.CreateEvent)
	calendar.Get("/events", calendarHandler.ListEvents)
	calendar.Put("/events/:id", calendarHandler.UpdateEvent)
	calendar.Delete("/events/:id", calendarHandler.DeleteEvent)
	calendar.Get("/:provider/connect", calendarHandler.Connect)
	calendar.Post("/:provider/sync", calendarHandler.Sync)
	calendar.Delete("/:provider", calendarHandler.Disconnect)

	// Open banking: sync transazioni ed export SEPA
	banking := protected.Group("/banking")
	bankingHandler := NewBankingHandler(deps.BankingUC)
	banking.Post("/sepa", bankingHandler.ExportSEPA)
	banking.Post("/:id/test", bankingHandler.TestConnection)
	banking.Post("/:id/sync", bankingHandler.Sync)

	// Impostazioni: notifiche, backup, sicurezza
	settings := protected.Group("/settings")

	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	settings.Get("/notifications", notificationHandler.Get)
	settings.Put("/notifications", notificationHandler.Save)
	settings.Post("/notifications/test", notificationHandler.TestSend)

	backupHandler := NewBackupHandler(deps.BackupUC)
	settings.Get("/backup", backupHandler.Get)
	settings.Put("/backup", backupHandler.Save)
	settings.Post("/backup/test", backupHandler.Test)
	settings.Post("/backup/run", backupHandler.Run)
	settings.Get("/backup/snapshots", backupHandler.Snapshots)

	securityHandler := NewSecurityHandler(deps.SecurityUC)
	security := settings.Group("/security", RequireRole(entity.RoleAdmin))
	security.Get("/", securityHandler.Get)
	security.Put("/", securityHandler.Save)
}
