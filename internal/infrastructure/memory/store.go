// Package memory implementa todos los puertos de persistencia en memoria.
// Se usa con STORAGE_DRIVER=memory (desarrollo, demos) y en los tests de la aplicación.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/jhoicas/gestion-stock/internal/application/inventory"
	"github.com/jhoicas/gestion-stock/internal/application/purchasing"
	"github.com/jhoicas/gestion-stock/internal/application/sales"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var (
	_ inventory.TxRunner  = (*Store)(nil)
	_ sales.TxRunner      = (*Store)(nil)
	_ purchasing.TxRunner = (*Store)(nil)
)

// Store estado completo en memoria.
//
// txMu serializa escrituras y transacciones; mu protege los mapas. Los repositorios obtenidos
// dentro de una transacción no toman txMu porque la transacción ya lo tiene.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex
	seq  uint64

	products      map[string]entity.Product
	movements     []entity.StockMovement
	sales         map[string]entity.Sale
	purchases     map[string]entity.Purchase
	suppliers     map[string]entity.Supplier
	customers     map[string]entity.Customer
	expenses      map[string]entity.Expense
	organizations map[string]entity.Organization // por owner_id
	users         map[string]entity.User
	order         map[string]uint64 // id → secuencia de inserción (desempate al ordenar)
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		products:      map[string]entity.Product{},
		sales:         map[string]entity.Sale{},
		purchases:     map[string]entity.Purchase{},
		suppliers:     map[string]entity.Supplier{},
		customers:     map[string]entity.Customer{},
		expenses:      map[string]entity.Expense{},
		organizations: map[string]entity.Organization{},
		users:         map[string]entity.User{},
		order:         map[string]uint64{},
	}
}

// view base de todos los repositorios.
type view struct {
	s  *Store
	tx bool
}

func (v view) write(fn func() error) error {
	if !v.tx {
		v.s.txMu.Lock()
		defer v.s.txMu.Unlock()
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn()
}

func (v view) read(fn func()) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	fn()
}

// touch asigna la secuencia de inserción. Llamar con mu tomado.
func (s *Store) touch(id string) {
	if _, ok := s.order[id]; ok {
		return
	}
	s.seq++
	s.order[id] = s.seq
}

// ── Repositorios fuera de transacción ─────────────────────────────────────────

func (s *Store) Products() *ProductRepo           { return &ProductRepo{view{s: s}} }
func (s *Store) Movements() *MovementRepo         { return &MovementRepo{view{s: s}} }
func (s *Store) Sales() *SaleRepo                 { return &SaleRepo{view{s: s}} }
func (s *Store) Purchases() *PurchaseRepo         { return &PurchaseRepo{view{s: s}} }
func (s *Store) Suppliers() *SupplierRepo         { return &SupplierRepo{view{s: s}} }
func (s *Store) Customers() *CustomerRepo         { return &CustomerRepo{view{s: s}} }
func (s *Store) Expenses() *ExpenseRepo           { return &ExpenseRepo{view{s: s}} }
func (s *Store) Organizations() *OrganizationRepo { return &OrganizationRepo{view{s: s}} }
func (s *Store) Users() *UserRepo                 { return &UserRepo{view{s: s}} }
func (s *Store) Analytics() *AnalyticsRepo        { return &AnalyticsRepo{view{s: s}} }

// ── Transacciones ─────────────────────────────────────────────────────────────

// snapshot copia lo que una transacción de stock puede modificar.
type snapshot struct {
	products  map[string]entity.Product
	movements []entity.StockMovement
	sales     map[string]entity.Sale
	purchases map[string]entity.Purchase
	order     map[string]uint64
	seq       uint64
}

func (s *Store) begin() snapshot {
	s.txMu.Lock()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{
		products:  cloneMap(s.products),
		movements: slices.Clone(s.movements),
		sales:     cloneMap(s.sales),
		purchases: cloneMap(s.purchases),
		order:     cloneMap(s.order),
		seq:       s.seq,
	}
}

func (s *Store) end(snap snapshot, err error) {
	if err != nil {
		s.mu.Lock()
		s.products = snap.products
		s.movements = snap.movements
		s.sales = snap.sales
		s.purchases = snap.purchases
		s.order = snap.order
		s.seq = snap.seq
		s.mu.Unlock()
	}
	s.txMu.Unlock()
}

// Run ejecuta fn de forma atómica: si devuelve error se descartan todos sus cambios.
func (s *Store) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
) error) (err error) {
	snap := s.begin()
	defer func() { s.end(snap, err) }()
	tv := view{s: s, tx: true}
	return fn(&ProductRepo{tv}, &MovementRepo{tv})
}

// RunSales transacción de ventas.
func (s *Store) RunSales(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
) error) (err error) {
	snap := s.begin()
	defer func() { s.end(snap, err) }()
	tv := view{s: s, tx: true}
	return fn(&ProductRepo{tv}, &MovementRepo{tv}, &SaleRepo{tv})
}

// RunPurchases transacción de compras.
func (s *Store) RunPurchases(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movRepo repository.StockMovementRepository,
	purchaseRepo repository.PurchaseRepository,
) error) (err error) {
	snap := s.begin()
	defer func() { s.end(snap, err) }()
	tv := view{s: s, tx: true}
	return fn(&ProductRepo{tv}, &MovementRepo{tv}, &PurchaseRepo{tv})
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// page aplica limit/offset; limit <= 0 = sin límite.
func page[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return list[:0]
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
