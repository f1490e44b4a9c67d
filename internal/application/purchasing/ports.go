package purchasing

import (
	"context"

	"github.com/jhoicas/Inventario-core/internal/domain/repository"
)

// TxRunner ejecuta una función como sección crítica que cruza colecciones:
// la cascada ORDERED -> RECEIVED escribe en órdenes y en el libro de
// inventario y debe verse como una sola operación. Sobre el store en memoria
// es un lock global; sobre un almacén SQL sería una transacción.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.PurchaseOrderRepository,
		movementRepo repository.StockMovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
