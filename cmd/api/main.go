package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/catalog"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
	"github.com/jhoicas/gestion-stock/internal/application/sales"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/cache"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/events"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/export"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/jobs"
	infrapdf "github.com/jhoicas/gestion-stock/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/gestion-stock/internal/interfaces/http"
	"github.com/jhoicas/gestion-stock/pkg/config"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es requerido")
	}

	ctx := context.Background()
	store, err := openStorage(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	defer store.close()

	// Caché del catálogo público: Redis si está configurado y responde; si no, sin caché.
	var catalogCache catalog.Cache = cache.NoopCatalogCache{}
	if cfg.Redis.Addr != "" {
		rc := cache.NewRedisCatalogCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis no disponible, catálogo sin caché")
			_ = rc.Close()
		} else {
			catalogCache = rc
			defer rc.Close()
		}
		cancel()
	}

	catalogSvc := catalog.NewService(store.organizations, store.products, catalogCache, catalog.Config{
		CacheTTL:       cfg.Redis.TTL(),
		DefaultOwnerID: cfg.Catalog.DefaultOwnerID,
		WhatsAppNumber: cfg.Catalog.WhatsAppNumber,
	}, log)

	// Cada cambio de productos, stock o tienda invalida la vitrina en caché del dueño.
	bus := events.New()
	if err := bus.OnCatalogChanged(func(ownerID string) {
		catalogSvc.Invalidate(context.Background(), ownerID)
	}); err != nil {
		log.Fatal().Err(err).Msg("suscripción a eventos de catálogo")
	}

	orgUC := usecase.NewOrganizationUseCase(store.organizations, bus)
	productUC := usecase.NewProductUseCase(store.products, bus)
	ledger := inventory.NewStockLedger(store.tx, store.products, store.movements, bus)
	salesCoord := sales.NewCoordinator(store.tx, store.sales, store.organizations, infrapdf.NewReceiptGenerator(), bus, log)
	purchaseCoord := purchasing.NewCoordinator(store.tx, store.purchases, store.suppliers, bus, log)
	authUC := auth.NewAuthUseCase(store.users, orgUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(store.analytics)
	reportUC := appanalytics.NewReportUseCase(store.sales, store.products, store.analytics, export.SalesCSV{}, export.InventoryXLSX{})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		Immutable:    true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el archivo generado)
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Gestión de Stock API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "storage": cfg.DB.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		Ledger:         ledger,
		Sales:          salesCoord,
		Purchases:      purchaseCoord,
		SupplierUC:     usecase.NewSupplierUseCase(store.suppliers),
		CustomerUC:     usecase.NewCustomerUseCase(store.customers),
		ExpenseUC:      usecase.NewExpenseUseCase(store.expenses, store.suppliers),
		OrganizationUC: orgUC,
		AdminUC:        usecase.NewAdminUseCase(store.users, store.organizations),
		Catalog:        catalogSvc,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
		SingleTenant:   cfg.Catalog.SingleTenant,
	})

	scheduler := jobs.NewScheduler(log)
	if err := scheduler.AddLowStockScan(cfg.Jobs.LowStockCron, store.products); err != nil {
		log.Fatal().Err(err).Msg("programar escaneo de stock bajo")
	}
	scheduler.Start()

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

	scheduler.Stop()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
