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

	_ "github.com/invorya/stock-alerts/docs"
	"github.com/invorya/stock-alerts/internal/application/alerts"
	"github.com/invorya/stock-alerts/internal/application/auth"
	"github.com/invorya/stock-alerts/internal/application/inventory"
	"github.com/invorya/stock-alerts/internal/application/usecase"
	infrapdf "github.com/invorya/stock-alerts/internal/infrastructure/pdf"
	"github.com/invorya/stock-alerts/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/stock-alerts/internal/interfaces/http"
	"github.com/invorya/stock-alerts/pkg/config"
	"github.com/invorya/stock-alerts/pkg/logger"
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
		Int("alerts_window_days", cfg.Alerts.WindowDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	alertRepo := postgres.NewAlertReadRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerEntryUC := inventory.NewRegisterEntryUseCase(txRunner, productRepo, warehouseRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo, productRepo)

	reportGen := infrapdf.NewAlertReportGenerator()
	lowStockUC := alerts.NewLowStockAlertUseCase(alertRepo, reportGen, log, alerts.Options{
		WindowDays:     cfg.Alerts.WindowDays,
		MaxConcurrency: cfg.Alerts.MaxConcurrency,
	})

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Stock Alerts API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		WarehouseUC:   warehouseUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		RegisterEntry: registerEntryUC,
		StockRepo:     stockRepo,
		LowStockUC:    lowStockUC,
		AuthUC:        authUC,
		Log:           log,
		JWTSecret:     cfg.JWT.Secret,
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
