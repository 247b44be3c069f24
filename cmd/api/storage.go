package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
	"github.com/jhoicas/gestion-stock/internal/application/sales"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-stock/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-stock/pkg/config"
	"github.com/jhoicas/gestion-stock/pkg/logger"
)

// txRunner transacciones de los tres coordinadores (ledger, ventas, compras).
type txRunner interface {
	inventory.TxRunner
	sales.TxRunner
	purchasing.TxRunner
}

// storage repositorios del driver elegido.
type storage struct {
	tx            txRunner
	products      repository.ProductRepository
	movements     repository.StockMovementRepository
	sales         repository.SaleRepository
	purchases     repository.PurchaseRepository
	suppliers     repository.SupplierRepository
	customers     repository.CustomerRepository
	expenses      repository.ExpenseRepository
	organizations repository.OrganizationRepository
	users         repository.UserRepository
	analytics     repository.AnalyticsRepository
	close         func()
}

// openStorage abre PostgreSQL (aplicando el esquema si DB_AUTO_MIGRATE) o el almacenamiento en memoria.
func openStorage(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		s := memory.New()
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return &storage{
			tx:            s,
			products:      s.Products(),
			movements:     s.Movements(),
			sales:         s.Sales(),
			purchases:     s.Purchases(),
			suppliers:     s.Suppliers(),
			customers:     s.Customers(),
			expenses:      s.Expenses(),
			organizations: s.Organizations(),
			users:         s.Users(),
			analytics:     s.Analytics(),
			close:         func() {},
		}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.AutoMigrate {
			if err := postgres.EnsureSchema(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("aplicar esquema: %w", err)
			}
			log.Info().Msg("esquema de base de datos verificado")
		}
		return &storage{
			tx:            postgres.NewTxRunner(pool),
			products:      postgres.NewProductRepository(pool),
			movements:     postgres.NewStockMovementRepository(pool),
			sales:         postgres.NewSaleRepository(pool),
			purchases:     postgres.NewPurchaseRepository(pool),
			suppliers:     postgres.NewSupplierRepository(pool),
			customers:     postgres.NewCustomerRepository(pool),
			expenses:      postgres.NewExpenseRepository(pool),
			organizations: postgres.NewOrganizationRepository(pool),
			users:         postgres.NewUserRepository(pool),
			analytics:     postgres.NewAnalyticsRepository(pool),
			close:         pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Driver)
	}
}
