package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/botboy223/printpron/internal/application/analytics"
	"github.com/botboy223/printpron/internal/application/billing"
	"github.com/botboy223/printpron/internal/application/cart"
	"github.com/botboy223/printpron/internal/application/catalog"
	"github.com/botboy223/printpron/internal/application/scan"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *catalog.UseCase
	CartUC      *cart.UseCase
	ScanUC      *scan.UseCase
	FinalizeUC  *billing.FinalizeUseCase
	HistoryUC   *billing.HistoryUseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API. Todo es local y de un solo operador:
// no hay autenticación que aplicar.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos (setup)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", productHandler.Save)
	products.Get("/:code", productHandler.GetByCode)

	// Inventario
	inventoryHandler := NewInventoryHandler(deps.ProductUC)
	inventory := api.Group("/inventory")
	inventory.Get("/", inventoryHandler.List)
	inventory.Put("/:code", inventoryHandler.SetQuantity)

	// Escaneo (lector de barras externo)
	scanHandler := NewScanHandler(deps.ScanUC)
	api.Post("/scan", scanHandler.Scan)

	// Carrito
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup := api.Group("/cart")
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:index", cartHandler.SetQuantity)
	cartGroup.Delete("/", cartHandler.Clear)

	// Facturación
	billingHandler := NewBillingHandler(deps.FinalizeUC, deps.HistoryUC)
	api.Post("/checkout", billingHandler.Checkout)
	api.Get("/sales", billingHandler.ListSales)
	api.Get("/payment-config", billingHandler.GetPaymentConfig)
	api.Put("/payment-config", billingHandler.SavePaymentConfig)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)
}
