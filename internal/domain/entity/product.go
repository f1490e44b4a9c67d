package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. El stock no se guarda en el
// registro: es derivado, siempre igual a la suma con signo de los movimientos
// del libro que lo referencian, y jamás se modifica editando el producto.
type Product struct {
	ID         int64
	Code       string // código del llamador; el sistema no garantiza unicidad
	Name       string
	CategoryID int64
	UnitID     int64
	CostPrice  decimal.Decimal
	SalePrice  decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
