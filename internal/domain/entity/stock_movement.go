package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de inventario.
const (
	MovementTypePurchaseReceipt = "PURCHASE_RECEIPT" // recepción de orden de compra
	MovementTypeSale            = "SALE"             // salida por venta
	MovementTypeAdjustment      = "ADJUSTMENT"       // ajuste manual
)

// StockMovement asiento del libro de inventario. Es inmutable: no se edita ni
// se borra; una corrección es un nuevo asiento que compensa el anterior.
type StockMovement struct {
	ID        int64
	ProductID int64
	Type      string
	Quantity  decimal.Decimal // positivo entrada, negativo salida
	Reference string          // documento origen, ej. número de orden de compra
	Note      string
	BatchID   string // agrupa los asientos generados por una misma operación
	CreatedBy string
	CreatedAt time.Time
}

// ValidMovementType reporta si t es un tipo de movimiento conocido.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypePurchaseReceipt, MovementTypeSale, MovementTypeAdjustment:
		return true
	}
	return false
}

// ValidQuantityForType valida el signo de la cantidad según el tipo:
// recepción positiva, venta negativa, ajuste cualquier valor distinto de cero.
func ValidQuantityForType(t string, qty decimal.Decimal) bool {
	switch t {
	case MovementTypePurchaseReceipt:
		return qty.GreaterThan(decimal.Zero)
	case MovementTypeSale:
		return qty.LessThan(decimal.Zero)
	case MovementTypeAdjustment:
		return !qty.IsZero()
	}
	return false
}
