package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-core/internal/domain/entity"
)

// StockMovementRepository define el puerto del libro de inventario (DIP).
// El libro es append-only: no hay Update ni Delete; las correcciones son
// nuevos asientos que compensan.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	// CreateBatch inserta todos los asientos o ninguno: valida el lote
	// completo antes de escribir el primero.
	CreateBatch(movements []*entity.StockMovement) error
	GetByID(id int64) (*entity.StockMovement, error)
	List() ([]entity.StockMovement, error)
	// BalanceByProduct suma con signo de todos los asientos del producto.
	BalanceByProduct(productID int64) (decimal.Decimal, error)
}
