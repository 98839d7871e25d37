package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/easycashflows/api/internal/application/analytics"
	"github.com/easycashflows/api/internal/application/auth"
	"github.com/easycashflows/api/internal/application/backupsvc"
	"github.com/easycashflows/api/internal/application/bankingsvc"
	"github.com/easycashflows/api/internal/application/calendarsync"
	"github.com/easycashflows/api/internal/application/movement"
	"github.com/easycashflows/api/internal/application/notification"
	"github.com/easycashflows/api/internal/application/ports"
	"github.com/easycashflows/api/internal/application/usecase"
	"github.com/easycashflows/api/internal/domain/entity"
	infraai "github.com/easycashflows/api/internal/infrastructure/ai"
	infrabackup "github.com/easycashflows/api/internal/infrastructure/backup"
	infrabanking "github.com/easycashflows/api/internal/infrastructure/banking"
	infracalendar "github.com/easycashflows/api/internal/infrastructure/calendar"
	infraemail "github.com/easycashflows/api/internal/infrastructure/email"
	infraexcel "github.com/easycashflows/api/internal/infrastructure/excel"
	inframessaging "github.com/easycashflows/api/internal/infrastructure/messaging"
	infrapdf "github.com/easycashflows/api/internal/infrastructure/pdf"
	"github.com/easycashflows/api/internal/infrastructure/postgres"
	httpRouter "github.com/easycashflows/api/internal/interfaces/http"
	"github.com/easycashflows/api/pkg/config"
	"github.com/easycashflows/api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("caricamento configurazione: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("avvio applicazione")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connessione a PostgreSQL")
	}
	defer pool.Close()

	// Repository
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	coreRepo := postgres.NewCoreRepository(pool)
	resourceRepo := postgres.NewResourceRepository(pool)
	officeRepo := postgres.NewOfficeRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	ibanRepo := postgres.NewIBANRepository(pool)
	tagRepo := postgres.NewTagRepository(pool)
	statusRepo := postgres.NewStatusRepository(pool)
	reasonRepo := postgres.NewReasonRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	integRepo := postgres.NewCalendarIntegrationRepository(pool)
	eventRepo := postgres.NewCalendarEventRepository(pool)
	linkRepo := postgres.NewCalendarLinkRepository(pool)
	notifSettingsRepo := postgres.NewNotificationSettingsRepository(pool)
	backupSettingsRepo := postgres.NewBackupSettingsRepository(pool)
	securitySettingsRepo := postgres.NewSecuritySettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Use case delle anagrafiche
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	coreUC := usecase.NewCoreUseCase(coreRepo, companyRepo)
	resourceUC := usecase.NewResourceUseCase(resourceRepo, companyRepo)
	officeUC := usecase.NewOfficeUseCase(officeRepo, companyRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	ibanUC := usecase.NewIBANUseCase(ibanRepo, companyRepo)
	tagUC := usecase.NewTagUseCase(tagRepo)
	statusUC := usecase.NewStatusUseCase(statusRepo)
	reasonUC := usecase.NewReasonUseCase(reasonRepo)
	securityUC := usecase.NewSecurityUseCase(securitySettingsRepo)

	notificationUC := notification.NewUseCase(
		notifSettingsRepo,
		resourceRepo,
		infraemail.NewMailerFactory(),
		inframessaging.NewWhatsAppFactory(),
		log.Zerolog(),
	)

	// Movimenti: scritture transazionali con validazione dei riferimenti;
	// la registrazione notifica i canali configurati in background
	movementUC := movement.NewUseCase(txRunner, movementRepo, analyticsRepo, notificationUC)
	movementExport := movement.NewExportUseCase(
		movementRepo, companyRepo,
		infrapdf.NewMarotoReportGenerator(),
		infraexcel.NewExcelizeExporter(),
	)

	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	var llm ports.LLMService
	if cfg.AI.Provider == "gemini" {
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	} else {
		llm = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	}
	aiUC := usecase.NewAIUseCase(llm, movementRepo)

	// Calendari: un adapter per provider, redirect sul callback pubblico
	providers := map[string]ports.CalendarProvider{
		entity.CalendarProviderGoogle: infracalendar.NewGoogleCalendar(
			cfg.Google.ClientID, cfg.Google.ClientSecret,
			cfg.App.BaseURL+"/api/calendar/google/callback",
		),
		entity.CalendarProviderOutlook: infracalendar.NewOutlookCalendar(
			cfg.Microsoft.ClientID, cfg.Microsoft.ClientSecret, cfg.Microsoft.TenantID,
			cfg.App.BaseURL+"/api/calendar/outlook/callback",
		),
	}
	calendarUC := calendarsync.NewUseCase(
		integRepo, eventRepo, linkRepo, movementRepo, providers, cfg.JWT.Secret,
	)

	backupUC := backupsvc.NewUseCase(
		backupSettingsRepo, movementRepo,
		infrabackup.NewProviderFactory(),
		log.Zerolog(),
	)

	bankingUC := bankingsvc.NewUseCase(
		ibanRepo, companyRepo, movementRepo,
		coreRepo, statusRepo, reasonRepo, supplierRepo,
		infrabanking.ProviderFor,
		infrabanking.NewSEPABuilder(),
		log.Zerolog(),
	)

	authUC := auth.NewUseCase(userRepo, companyRepo, cfg.JWT)

	limiter := httpRouter.NewSecurityLimiter(securitySettingsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI in locale: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "EasyCashFlows API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		CompanyUC:      companyUC,
		CoreUC:         coreUC,
		ResourceUC:     resourceUC,
		OfficeUC:       officeUC,
		SupplierUC:     supplierUC,
		CustomerUC:     customerUC,
		IBANUC:         ibanUC,
		TagUC:          tagUC,
		StatusUC:       statusUC,
		ReasonUC:       reasonUC,
		MovementUC:     movementUC,
		MovementExport: movementExport,
		DashboardUC:    dashboardUC,
		AIUC:           aiUC,
		CalendarUC:     calendarUC,
		NotificationUC: notificationUC,
		BackupUC:       backupUC,
		BankingUC:      bankingUC,
		SecurityUC:     securityUC,
		Limiter:        limiter,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("server HTTP terminato")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("segnale di arresto ricevuto, chiusura del server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("arresto del server")
	}

	log.Info().Msg("applicazione fermata")
}
