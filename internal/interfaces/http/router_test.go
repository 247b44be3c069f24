package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/gestion-stock/internal/application/analytics"
	"github.com/jhoicas/gestion-stock/internal/application/auth"
	"github.com/jhoicas/gestion-stock/internal/application/catalog"
	"github.com/jhoicas/gestion-stock/internal/application/dto"
	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
	"github.com/jhoicas/gestion-stock/internal/application/sales"
	"github.com/jhoicas/gestion-stock/internal/application/usecase"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/export"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/gestion-stock/internal/interfaces/http"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

// testServer API completa sobre el almacenamiento en memoria.
type testServer struct {
	app   *fiber.App
	store *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := memory.New()
	log := logger.Nop()

	orgUC := usecase.NewOrganizationUseCase(store.Organizations(), nil)
	catalogSvc := catalog.NewService(store.Organizations(), store.Products(), nil, catalog.Config{
		DefaultOwnerID: testUserID,
		WhatsAppNumber: "573001112233",
	}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(store.Users(), orgUC, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		ProductUC:      usecase.NewProductUseCase(store.Products(), nil),
		Ledger:         inventory.NewStockLedger(store, store.Products(), store.Movements(), nil),
		Sales:          sales.NewCoordinator(store, store.Sales(), store.Organizations(), pdf.NewReceiptGenerator(), nil, log),
		Purchases:      purchasing.NewCoordinator(store, store.Purchases(), store.Suppliers(), nil, log),
		SupplierUC:     usecase.NewSupplierUseCase(store.Suppliers()),
		CustomerUC:     usecase.NewCustomerUseCase(store.Customers()),
		ExpenseUC:      usecase.NewExpenseUseCase(store.Expenses(), store.Suppliers()),
		OrganizationUC: orgUC,
		AdminUC:        usecase.NewAdminUseCase(store.Users(), store.Organizations()),
		Catalog:        catalogSvc,
		DashboardUC:    appanalytics.NewDashboardUseCase(store.Analytics()),
		ReportUC:       appanalytics.NewReportUseCase(store.Sales(), store.Products(), store.Analytics(), export.SalesCSV{}, export.InventoryXLSX{}),
		JWTSecret:      testJWTSecret,
		SingleTenant:   true,
	})
	return &testServer{app: app, store: store}
}

// call ejecuta la petición con el token del rol indicado ("" = sin token) y decodifica out si no es nil.
func (s *testServer) call(t *testing.T, method, path, role string, body any, out any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		req.Header.Set("Authorization", tokenForRole(t, role))
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (s *testServer) createProduct(t *testing.T, name string, qty int, cost, price int64) dto.ProductResponse {
	t.Helper()
	p := decimal.NewFromInt(price)
	var out dto.ProductResponse
	resp := s.call(t, http.MethodPost, "/api/products", "user", dto.CreateProductRequest{
		Name: name, Quantity: &qty, Cost: decimal.NewFromInt(cost), Price: &p,
	}, &out)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return out
}

func TestProductos_CrearConMargenYListar(t *testing.T) {
	s := newTestServer(t)
	qty := 10

	var created dto.ProductResponse
	resp := s.call(t, http.MethodPost, "/api/products", "user", dto.CreateProductRequest{
		Name: "Café", Quantity: &qty, Cost: decimal.NewFromInt(10), Margin: "50",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, decimal.NewFromInt(15).Equal(created.Price), "precio derivado de costo 10 y margen 50: %s", created.Price)
	assert.Equal(t, "50.0", created.Margin)

	var list dto.ProductListResponse
	resp = s.call(t, http.MethodGet, "/api/products?q=caf", "user", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list.Items, 1)
	assert.Equal(t, created.ID, list.Items[0].ID)
}

func TestProductos_SinTokenRetorna401(t *testing.T) {
	s := newTestServer(t)
	resp := s.call(t, http.MethodGet, "/api/products", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProductos_ValidacionYNoEncontrado(t *testing.T) {
	s := newTestServer(t)

	var errBody dto.ErrorResponse
	resp := s.call(t, http.MethodPost, "/api/products", "user", map[string]any{"name": "Sin cantidad"}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)

	resp = s.call(t, http.MethodGet, "/api/products/no-existe", "user", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errBody.Code)
}

func TestProductos_EliminarRequiereConfirmacion(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Té", 3, 5, 8)

	var errBody dto.ErrorResponse
	resp := s.call(t, http.MethodDelete, "/api/products/"+p.ID, "user", nil, &errBody)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "CONFIRMATION_REQUIRED", errBody.Code)

	resp = s.call(t, http.MethodDelete, "/api/products/"+p.ID+"?confirm=true", "user", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPricingPreview_EditarMargen(t *testing.T) {
	s := newTestServer(t)
	var out dto.PricingPreviewResponse
	resp := s.call(t, http.MethodPost, "/api/products/pricing/preview", "user", dto.PricingPreviewRequest{
		Cost: decimal.NewFromInt(10), Price: decimal.NewFromInt(15), Margin: "100", Changed: "margin",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decimal.NewFromInt(20).Equal(out.Price))
	assert.True(t, out.MarginEditable)
	assert.True(t, decimal.NewFromInt(10).Equal(out.NetProfit))

	resp = s.call(t, http.MethodPost, "/api/products/pricing/preview", "user", dto.PricingPreviewRequest{Changed: "otro"}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStock_IncrementarDecrementarYAjustar(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Pan", 1, 1, 2)

	var level dto.StockLevelResponse
	s.call(t, http.MethodPost, "/api/products/"+p.ID+"/increment", "user", nil, &level)
	assert.Equal(t, 2, level.Quantity)

	s.call(t, http.MethodPost, "/api/products/"+p.ID+"/adjust", "user", dto.AdjustQuantityRequest{Delta: -10}, &level)
	assert.Equal(t, 0, level.Quantity, "el ajuste manual no baja de 0")

	s.call(t, http.MethodPost, "/api/products/"+p.ID+"/decrement", "user", nil, &level)
	assert.Equal(t, 0, level.Quantity)

	q := 7
	resp := s.call(t, http.MethodPut, "/api/products/"+p.ID+"/quantity", "user", dto.SetQuantityRequest{Quantity: &q}, &level)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, level.Quantity)

	var low []dto.LowStockItem
	s.call(t, http.MethodGet, "/api/products/low-stock", "user", nil, &low)
	assert.Empty(t, low, "7 no está bajo el mínimo por defecto de 5")

	var movs []dto.StockMovementResponse
	resp = s.call(t, http.MethodGet, "/api/products/"+p.ID+"/movements", "user", nil, &movs)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, movs, 4, "cada operación del ledger deja su movimiento, incluso con delta efectivo 0")
}

// Los IDs de ruta no deben quedar atados al buffer de la petición: después de otra petición
// el producto sigue siendo el mismo y sus movimientos siguen a su nombre.
func TestStock_ProductoIntactoTrasPeticionPosterior(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Pan", 1, 1, 2)
	otherID := "ffffffff-ffff-ffff-ffff-ffffffffffff"

	resp := s.call(t, http.MethodPost, "/api/products/"+p.ID+"/increment", "user", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = s.call(t, http.MethodPost, "/api/products/"+otherID+"/increment", "user", nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	stored, err := s.store.Products().GetByID(context.Background(), testUserID, p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored, "el producto no debe desaparecer del almacenamiento")
	assert.Equal(t, 2, stored.Quantity)

	var got dto.ProductResponse
	resp = s.call(t, http.MethodGet, "/api/products/"+p.ID, "user", nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, 2, got.Quantity)

	var movs []dto.StockMovementResponse
	resp = s.call(t, http.MethodGet, "/api/products/"+p.ID+"/movements", "user", nil, &movs)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, movs, 1)
	assert.Equal(t, p.ID, movs[0].ProductID)

	resp = s.call(t, http.MethodGet, "/api/products/"+otherID+"/movements", "user", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	stray, err := s.store.Movements().ListByProduct(context.Background(), testUserID, otherID, 10)
	require.NoError(t, err)
	assert.Empty(t, stray, "ningún movimiento queda a nombre de otro ID")
}

func TestVentas_RegistrarYAnular(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Galletas", 5, 2, 3)

	var receipt dto.SaleReceiptResponse
	resp := s.call(t, http.MethodPost, "/api/sales", "user", dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: p.ID, Quantity: 7}},
	}, &receipt)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, dto.StockStatusComplete, receipt.Stock.Status)
	require.Len(t, receipt.Stock.Lines, 1)
	require.NotNil(t, receipt.Stock.Lines[0].QuantityAfter)
	assert.Equal(t, -2, *receipt.Stock.Lines[0].QuantityAfter, "la venta no se limita a 0")
	assert.True(t, decimal.NewFromInt(21).Equal(receipt.Sale.Total))

	saleID := receipt.Sale.ID
	resp = s.call(t, http.MethodDelete, "/api/sales/"+saleID, "user", nil, nil)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)

	var voided dto.VoidSaleResponse
	resp = s.call(t, http.MethodDelete, "/api/sales/"+saleID+"?confirm=true", "user", nil, &voided)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, dto.StockStatusComplete, voided.Stock.Status)

	var got dto.ProductResponse
	s.call(t, http.MethodGet, "/api/products/"+p.ID, "user", nil, &got)
	assert.Equal(t, 5, got.Quantity, "anular restaura la cantidad original")

	resp = s.call(t, http.MethodGet, "/api/sales/"+saleID, "user", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVentas_SinLineasRechazada(t *testing.T) {
	s := newTestServer(t)
	var errBody dto.ErrorResponse
	resp := s.call(t, http.MethodPost, "/api/sales", "user", dto.CreateSaleRequest{}, &errBody)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errBody.Code)
}

func TestVentas_ComprobantePDF(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Jugo", 4, 1, 2)
	var receipt dto.SaleReceiptResponse
	s.call(t, http.MethodPost, "/api/sales", "user", dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: p.ID, Quantity: 1}},
	}, &receipt)

	resp := s.call(t, http.MethodGet, "/api/sales/"+receipt.Sale.ID+"/receipt", "user", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

func TestCompras_RegistrarYEliminarConPiso(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Arroz", 2, 10, 15)

	var receipt dto.PurchaseReceiptResponse
	resp := s.call(t, http.MethodPost, "/api/purchases", "user", dto.CreatePurchaseRequest{
		Items: []dto.PurchaseLineRequest{{ProductID: p.ID, Quantity: 3, NewCost: decimal.NewFromInt(12)}},
	}, &receipt)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, decimal.NewFromInt(36).Equal(receipt.Purchase.Total))

	var got dto.ProductResponse
	s.call(t, http.MethodGet, "/api/products/"+p.ID, "user", nil, &got)
	assert.Equal(t, 5, got.Quantity)
	assert.True(t, decimal.NewFromInt(12).Equal(got.Cost), "la compra sobrescribe el costo")

	// Se venden 4 de las 5 unidades antes de eliminar la compra.
	s.call(t, http.MethodPost, "/api/sales", "user", dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: p.ID, Quantity: 4}},
	}, nil)

	var deleted dto.DeletePurchaseResponse
	resp = s.call(t, http.MethodDelete, "/api/purchases/"+receipt.Purchase.ID, "user", dto.ConfirmRequest{Confirm: true}, &deleted)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	s.call(t, http.MethodGet, "/api/products/"+p.ID, "user", nil, &got)
	assert.Equal(t, 0, got.Quantity, "eliminar la compra no deja stock negativo")
	assert.True(t, decimal.NewFromInt(12).Equal(got.Cost), "el costo no se revierte")
}

func TestCatalogoPublico_ProyeccionYEnlace(t *testing.T) {
	s := newTestServer(t)
	resp := s.call(t, http.MethodGet, "/api/organization", "user", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	disponible := s.createProduct(t, "Miel", 3, 5, 12)
	s.createProduct(t, "Queso", 0, 5, 9)

	var cat dto.CatalogResponse
	resp = s.call(t, http.MethodGet, "/api/public/catalog/"+testUserID, "", nil, &cat)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cat.Items, 2)
	badges := map[string]string{}
	for _, it := range cat.Items {
		badges[it.Name] = it.Badge
	}
	assert.Equal(t, "Disponible", badges["Miel"])
	assert.Equal(t, "Agotado", badges["Queso"])

	var single dto.CatalogResponse
	resp = s.call(t, http.MethodGet, "/api/public/catalog?q=miel", "", nil, &single)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, single.Items, 1)

	var link dto.OrderLinkResponse
	resp = s.call(t, http.MethodPost, "/api/public/catalog/"+testUserID+"/order-link", "", dto.OrderLinkRequest{
		Items: []dto.CartLineRequest{{ProductID: disponible.ID, Quantity: 2}},
	}, &link)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, link.URL, "https://wa.me/573001112233?text=")
	assert.Contains(t, link.Message, "• 2x Miel")
	assert.True(t, decimal.NewFromInt(24).Equal(link.Total))
}

func TestCatalogoPublico_TiendaInexistente(t *testing.T) {
	s := newTestServer(t)
	var errBody dto.ErrorResponse
	resp := s.call(t, http.MethodGet, "/api/public/catalog/desconocido", "", nil, &errBody)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "tienda no encontrada", errBody.Message)
}

func TestAuth_RegistroLoginYMe(t *testing.T) {
	s := newTestServer(t)

	var user dto.UserResponse
	resp := s.call(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "Ana@Tienda.com", Password: "secreto123", Name: "Ana",
	}, &user)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ana@tienda.com", user.Email)

	resp = s.call(t, http.MethodPost, "/api/auth/register", "", dto.RegisterRequest{
		Email: "ana@tienda.com", Password: "secreto123",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@tienda.com", Password: "mala-clave"}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var login dto.LoginResponse
	resp = s.call(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ana@tienda.com", Password: "secreto123"}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, "Mi Empresa", login.Organization.Name)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	meResp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	var me dto.UserResponse
	require.NoError(t, json.NewDecoder(meResp.Body).Decode(&me))
	assert.Equal(t, user.ID, me.ID)
}

func TestAdmin_SoloAdministradores(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.store.Users().Create(ctx, &entity.User{
		ID: "perfil-2", Email: "b@x.com", Name: "B", Role: entity.RoleUser, CreatedAt: now, UpdatedAt: now,
	}))

	resp := s.call(t, http.MethodGet, "/api/admin/profiles", "user", nil, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var profiles []dto.UserResponse
	resp = s.call(t, http.MethodGet, "/api/admin/profiles", "admin", nil, &profiles)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, profiles, 1)

	resp = s.call(t, http.MethodPut, "/api/admin/profiles/perfil-2/role", "admin", dto.SetRoleRequest{Role: "admin"}, nil)
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)

	var updated dto.UserResponse
	resp = s.call(t, http.MethodPut, "/api/admin/profiles/perfil-2/role", "admin", dto.SetRoleRequest{Role: "admin", Confirm: true}, &updated)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "admin", updated.Role)
	assert.True(t, updated.IsAdmin)
}

func TestAdmin_SetRoleConfirmaPorQueryYPersiste(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.store.Users().Create(ctx, &entity.User{
		ID: "perfil-2", Email: "b@x.com", Name: "B", Role: entity.RoleUser, CreatedAt: now, UpdatedAt: now,
	}))

	resp := s.call(t, http.MethodPut, "/api/admin/profiles/perfil-2/role?confirm=true", "admin", dto.SetRoleRequest{Role: "admin"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.call(t, http.MethodPut, "/api/admin/profiles/nadie-99/role?confirm=true", "admin", dto.SetRoleRequest{Role: "admin"}, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	u, err := s.store.Users().GetByID(ctx, "perfil-2")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, entity.RoleAdmin, u.Role)

	var profiles []dto.UserResponse
	resp = s.call(t, http.MethodGet, "/api/admin/profiles", "admin", nil, &profiles)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, profiles, 1)
	assert.Equal(t, "perfil-2", profiles[0].ID)
	assert.True(t, profiles[0].IsAdmin)
}

func TestContactos_ProveedoresClientesGastos(t *testing.T) {
	s := newTestServer(t)

	var sup dto.SupplierResponse
	resp := s.call(t, http.MethodPost, "/api/suppliers", "user", dto.SupplierRequest{Name: "Distribuidora"}, &sup)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var exp dto.ExpenseResponse
	resp = s.call(t, http.MethodPost, "/api/expenses", "user", dto.ExpenseRequest{
		Description: "Arriendo", Amount: decimal.NewFromInt(500), SupplierID: sup.ID,
	}, &exp)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "General", exp.Category)

	resp = s.call(t, http.MethodPost, "/api/expenses", "user", dto.ExpenseRequest{
		Description: "Luz", Amount: decimal.NewFromInt(80), SupplierID: "no-existe",
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var cust dto.CustomerResponse
	resp = s.call(t, http.MethodPost, "/api/customers", "user", dto.CustomerRequest{Name: "Luis", Phone: "3001234567"}, &cust)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var customers []dto.CustomerResponse
	s.call(t, http.MethodGet, "/api/customers?q=300123", "user", nil, &customers)
	assert.Len(t, customers, 1)

	resp = s.call(t, http.MethodDelete, "/api/suppliers/"+sup.ID, "user", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = s.call(t, http.MethodPut, "/api/suppliers/"+sup.ID, "user", dto.SupplierRequest{Name: "X"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReportes_ResumenYExportaciones(t *testing.T) {
	s := newTestServer(t)
	p := s.createProduct(t, "Leche", 10, 2, 5)
	s.call(t, http.MethodPost, "/api/sales", "user", dto.CreateSaleRequest{
		Items: []dto.SaleLineRequest{{ProductID: p.ID, Quantity: 2}},
	}, nil)

	var summary dto.DashboardSummaryDTO
	resp := s.call(t, http.MethodGet, "/api/dashboard/summary", "user", nil, &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decimal.NewFromInt(10).Equal(summary.TodaySales))
	assert.True(t, decimal.NewFromInt(6).Equal(summary.TodayProfit))

	var report dto.SalesReportDTO
	resp = s.call(t, http.MethodGet, "/api/reports/sales", "user", nil, &report)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, report.Rows, 1)

	resp = s.call(t, http.MethodGet, "/api/reports/sales?from=2026-02-10&to=2026-02-01", "user", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.call(t, http.MethodGet, "/api/reports/sales.csv", "user", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "venta,fecha")

	resp = s.call(t, http.MethodGet, "/api/reports/inventory.xlsx", "user", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}
