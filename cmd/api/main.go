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

	_ "github.com/jhondav/agencia-api/docs"
	appanalytics "github.com/jhondav/agencia-api/internal/application/analytics"
	"github.com/jhondav/agencia-api/internal/application/auth"
	appbilling "github.com/jhondav/agencia-api/internal/application/billing"
	appcontracts "github.com/jhondav/agencia-api/internal/application/contracts"
	"github.com/jhondav/agencia-api/internal/application/ports"
	"github.com/jhondav/agencia-api/internal/application/session"
	"github.com/jhondav/agencia-api/internal/application/usecase"
	"github.com/jhondav/agencia-api/internal/domain/space"
	infraai "github.com/jhondav/agencia-api/internal/infrastructure/ai"
	"github.com/jhondav/agencia-api/internal/infrastructure/memory"
	infrapdf "github.com/jhondav/agencia-api/internal/infrastructure/pdf"
	"github.com/jhondav/agencia-api/internal/infrastructure/postgres"
	"github.com/jhondav/agencia-api/internal/infrastructure/ubl"
	httpRouter "github.com/jhondav/agencia-api/internal/interfaces/http"
	"github.com/jhondav/agencia-api/pkg/config"
	"github.com/jhondav/agencia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Mapeo rol → espacios y menú: estáticos, inyectados en todo lo demás.
	rsm := space.DefaultRoleSpaceMap()
	if err := rsm.Validate(); err != nil {
		log.Fatal().Err(err).Msg("mapeo de espacios inválido")
	}
	navigation := space.DefaultNavigation()

	userRepo := postgres.NewUserRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	contactRepo := postgres.NewContactRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	noteRepo := postgres.NewNoteRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	issuer := appbilling.Issuer{
		Name:    cfg.Billing.IssuerName,
		TaxID:   cfg.Billing.IssuerTaxID,
		Address: cfg.Billing.IssuerAddress,
		Email:   cfg.Billing.IssuerEmail,
	}

	authUC := auth.NewAuthUseCase(userRepo, rsm, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	sessionUC := session.NewSessionUseCase(memory.NewSessionStore(rsm), rsm, navigation)

	accountUC := usecase.NewAccountUseCase(accountRepo)
	contactUC := usecase.NewContactUseCase(contactRepo, accountRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, accountRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo)
	noteUC := usecase.NewNoteUseCase(noteRepo)

	// IA: sin API key el servicio responde error y los endpoints devuelven 503.
	if cfg.AI.AnthropicAPIKey == "" {
		log.Warn().Msg("ANTHROPIC_API_KEY no configurado; redacción IA deshabilitada")
	}
	var llm ports.LLMService = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(llm)

	invoiceUC := appbilling.NewCreateInvoiceUseCase(
		txRunner, invoiceRepo, accountRepo, issuer,
		cfg.Billing.DefaultPrefix, cfg.Billing.Currency,
	)
	pdfUC := appbilling.NewInvoicePDFUseCase(
		invoiceRepo, accountRepo, infrapdf.NewMarotoInvoiceGenerator(), issuer,
	)
	ublUC := appbilling.NewUBLExportUseCase(
		invoiceRepo, accountRepo, ubl.NewExporter(), issuer,
	)
	contractUC := appcontracts.NewContractUseCase(
		contractRepo, accountRepo, llm,
		infrapdf.NewMarotoContractGenerator(), issuer, cfg.Billing.Currency,
	)
	dashboardUC := appanalytics.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Agencia API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SessionUC:   sessionUC,
		AccountUC:   accountUC,
		ContactUC:   contactUC,
		ProjectUC:   projectUC,
		TaskUC:      taskUC,
		NoteUC:      noteUC,
		AIUC:        aiUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		UBLUC:       ublUC,
		ContractUC:  contractUC,
		DashboardUC: dashboardUC,
		RSM:         rsm,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
