package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementSale         = "venta"
	MovementSaleVoid     = "anulacion_venta"
	MovementPurchase     = "compra"
	MovementPurchaseVoid = "anulacion_compra"
	MovementManual       = "ajuste_manual"
)

// StockMovement registro de auditoría de cada ajuste de cantidad.
type StockMovement struct {
	ID            string
	OwnerID       string
	ProductID     string
	Type          string
	Delta         int
	QuantityAfter int
	ReferenceID   string // venta o compra que lo originó
	CreatedAt     time.Time
}
