package memory

import (
	"context"

	"github.com/jhoicas/Inventario-core/internal/application/purchasing"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
)

// Ensure TxRunner implements purchasing.TxRunner.
var _ purchasing.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de la sección crítica global del store:
// el equivalente en memoria de una transacción. No existe rollback, así que
// el callback debe validar todo primero y mutar al final; con el lock global
// tomado ningún otro escritor multi-colección puede intercalarse.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run toma el lock global, ejecuta fn con repositorios atados al store y lo
// libera al terminar. El error de fn se propaga sin envolver.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orderRepo repository.PurchaseOrderRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.txMu.Lock()
	defer r.store.txMu.Unlock()
	return fn(
		NewPurchaseOrderRepository(r.store),
		NewStockMovementRepository(r.store),
		NewProductRepository(r.store),
	)
}
