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

	"github.com/botboy223/printpron/internal/application/analytics"
	appbilling "github.com/botboy223/printpron/internal/application/billing"
	"github.com/botboy223/printpron/internal/application/cart"
	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/scan"
	"github.com/botboy223/printpron/internal/infrastructure/localstore"
	infrapdf "github.com/botboy223/printpron/internal/infrastructure/pdf"
	httpRouter "github.com/botboy223/printpron/internal/interfaces/http"
	"github.com/botboy223/printpron/pkg/config"
	"github.com/botboy223/printpron/pkg/logger"
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
		Str("data_dir", cfg.Store.DataDir).
		Msg("iniciando aplicación")

	// Almacén local de documentos JSON: falla rápido si algún documento
	// persistido está corrupto.
	store, err := localstore.Open(cfg.Store.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén local")
	}

	catalogRepo := store.Catalog()
	stockRepo := store.Stock()
	historyRepo := store.SaleHistory()
	paymentRepo := store.PaymentConfig()

	productUC := catalog.NewUseCase(catalogRepo, stockRepo)
	cartUC := cart.NewUseCase(catalogRepo, stockRepo)
	scanUC := scan.NewUseCase(productUC, cartUC)

	// PDF: recibo térmico de 48mm con QR de pago UPI
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	finalizeUC := appbilling.NewFinalizeUseCase(
		cartUC, productUC, catalogRepo, historyRepo, paymentRepo,
		receiptGenerator, cfg.POS.CurrencyCode,
	)
	historyUC := appbilling.NewHistoryUseCase(historyRepo, catalogRepo)
	dashboardUC := analytics.NewDashboardUseCase(historyRepo, stockRepo, cfg.POS.LowStockThreshold)

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
		Title:    "printpron API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		CartUC:      cartUC,
		ScanUC:      scanUC,
		FinalizeUC:  finalizeUC,
		HistoryUC:   historyUC,
		DashboardUC: dashboardUC,
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
