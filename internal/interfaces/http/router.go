package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/catalog"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
	"github.com/jhoicas/gestion-stock/internal/application/sales"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	Ledger         *inventory.StockLedger
	Sales          *sales.Coordinator
	Purchases      *purchasing.Coordinator
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *usecase.CustomerUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	OrganizationUC *usecase.OrganizationUseCase
	AdminUC        *usecase.AdminUseCase
	Catalog        *catalog.Service
	DashboardUC    *appanalytics.DashboardUseCase
	ReportUC       *appanalytics.ReportUseCase
	JWTSecret      string
	SingleTenant   bool
}

// Router registra las rutas de la API.
// Las rutas públicas se registran antes que las protegidas; cada grupo protegido lleva su propio AuthMiddleware.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público salvo /me)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Get("/auth/me", requireAuth, authHandler.Me)

	// Catálogo público
	catalogHandler := NewCatalogHandler(deps.Catalog)
	public := api.Group("/public/catalog")
	if deps.SingleTenant {
		public.Get("/", catalogHandler.GetDefault)
		public.Post("/order-link", catalogHandler.OrderLinkDefault)
	}
	public.Get("/:ownerID", catalogHandler.Get)
	public.Post("/:ownerID/order-link", catalogHandler.OrderLink)

	// Products + ledger de stock. Rutas estáticas antes de /:id.
	products := api.Group("/products", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.Ledger)
	products.Post("/pricing/preview", productHandler.PricingPreview)
	products.Get("/low-stock", inventoryHandler.LowStock)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/quantity", inventoryHandler.SetQuantity)
	products.Post("/:id/increment", inventoryHandler.Increment)
	products.Post("/:id/decrement", inventoryHandler.Decrement)
	products.Post("/:id/adjust", inventoryHandler.Adjust)
	products.Get("/:id/movements", inventoryHandler.Movements)

	// Ventas
	salesGroup := api.Group("/sales", requireAuth)
	saleHandler := NewSaleHandler(deps.Sales)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)
	salesGroup.Delete("/:id", saleHandler.Void)

	// Compras
	purchases := api.Group("/purchases", requireAuth)
	purchaseHandler := NewPurchaseHandler(deps.Purchases)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Proveedores
	suppliers := api.Group("/suppliers", requireAuth)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Clientes
	customers := api.Group("/customers", requireAuth)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Gastos
	expenses := api.Group("/expenses", requireAuth)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Tienda
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	api.Get("/organization", requireAuth, orgHandler.Get)
	api.Put("/organization", requireAuth, orgHandler.Update)

	// Tablero y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", requireAuth, dashboardHandler.GetSummary)
	reports := api.Group("/reports", requireAuth)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales.csv", reportHandler.SalesCSV)
	reports.Get("/inventory.xlsx", reportHandler.InventoryXLSX)

	// Consola de administración
	admin := api.Group("/admin", requireAuth, RequireAdmin())
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin.Get("/profiles", adminHandler.ListProfiles)
	admin.Put("/profiles/:id/role", adminHandler.SetRole)
	admin.Get("/organizations", adminHandler.ListOrganizations)
}
