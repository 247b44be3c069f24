package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-stock/internal/domain"
	"github.com/jhoicas/gestion-stock/internal/domain/entity"
	"github.com/jhoicas/gestion-stock/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, owner_id, name, description, image, quantity, cost, price, min_stock, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Image, &p.Quantity,
		&p.Cost, &p.Price, &p.MinStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Description, p.Image, p.Quantity,
		p.Cost, p.Price, p.MinStock, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del dueño. nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los datos editables. La cantidad no se toca aquí (SetQuantity / AdjustQuantity).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $3, description = $4, image = $5, cost = $6, price = $7, min_stock = $8, updated_at = $9
		WHERE id = $1 AND owner_id = $2`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.OwnerID, p.Name, p.Description, p.Image, p.Cost, p.Price, p.MinStock, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCost sobrescribe el último costo conocido (compras).
func (r *ProductRepo) UpdateCost(ctx context.Context, ownerID, id string, cost decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE products SET cost = $3, updated_at = now() WHERE id = $1 AND owner_id = $2`,
		id, ownerID, cost,
	)
	if err != nil {
		return fmt.Errorf("update product cost: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List productos del dueño, más recientes primero.
func (r *ProductRepo) List(ctx context.Context, ownerID string, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE owner_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		  AND (NOT $3 OR quantity < min_stock)
		ORDER BY created_at DESC, id
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(ctx, query, ownerID, escapeLike(strings.TrimSpace(filter.Search)),
		filter.LowStockOnly, limitArg(filter.Limit), max(filter.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

// Delete elimina el producto; las ventas pasadas conservan su foto.
func (r *ProductRepo) Delete(ctx context.Context, ownerID, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// La subconsulta "prev" bloquea la fila y conserva la cantidad previa para el RETURNING.
// No se llama "old": desde PostgreSQL 18 ese nombre está reservado en RETURNING.
const (
	setQuantitySQL = `
		UPDATE products p SET quantity = $3, updated_at = now()
		FROM (SELECT id, quantity FROM products WHERE id = $1 AND owner_id = $2 FOR UPDATE) prev
		WHERE p.id = prev.id
		RETURNING p.id::text, prev.quantity, p.quantity`

	adjustQuantitySQL = `
		UPDATE products p SET
		    quantity = CASE WHEN $4 THEN GREATEST(prev.quantity + $3, 0) ELSE prev.quantity + $3 END,
		    updated_at = now()
		FROM (SELECT id, quantity FROM products WHERE id = $1 AND owner_id = $2 FOR UPDATE) prev
		WHERE p.id = prev.id
		RETURNING p.id::text, prev.quantity, p.quantity`
)

// SetQuantity sobrescribe la cantidad y devuelve el valor anterior. La fila queda bloqueada (FOR UPDATE)
// entre la lectura y la escritura.
func (r *ProductRepo) SetQuantity(ctx context.Context, ownerID, id string, quantity int) (*repository.QuantityChange, error) {
	return r.change(ctx, id, setQuantitySQL, id, ownerID, quantity)
}

// AdjustQuantity quantity + delta en una sola sentencia; con floorAtZero usa GREATEST(…, 0).
func (r *ProductRepo) AdjustQuantity(ctx context.Context, ownerID, id string, delta int, floorAtZero bool) (*repository.QuantityChange, error) {
	return r.change(ctx, id, adjustQuantitySQL, id, ownerID, delta, floorAtZero)
}

func (r *ProductRepo) change(ctx context.Context, id, query string, args ...any) (*repository.QuantityChange, error) {
	if !validID(id) {
		return nil, nil
	}
	var c repository.QuantityChange
	if err := r.q.QueryRow(ctx, query, args...).Scan(&c.ProductID, &c.Before, &c.After); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update product quantity: %w", err)
	}
	return &c, nil
}

// ListLowStock quantity < min_stock, los más críticos primero. ownerID vacío = todos los dueños.
func (r *ProductRepo) ListLowStock(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE ($1 = '' OR owner_id::text = $1) AND quantity < min_stock
		ORDER BY quantity ASC, name ASC`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// validID los ids son UUID; cualquier otra cosa no puede existir.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// escapeLike evita que % y _ del usuario actúen como comodines en ILIKE.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
