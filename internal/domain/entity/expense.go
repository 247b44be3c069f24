package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultExpenseCategory categoría cuando no se indica ninguna.
const DefaultExpenseCategory = "General"

// Expense gasto operativo, opcionalmente ligado a un proveedor.
type Expense struct {
	ID          string
	OwnerID     string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Category    string
	SupplierID  string
	CreatedAt   time.Time
}
