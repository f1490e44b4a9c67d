package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
)

// Ensure StockMovementRepository implements repository.StockMovementRepository.
var _ repository.StockMovementRepository = (*StockMovementRepository)(nil)

// StockMovementRepository libro de inventario en memoria. Append-only: los
// asientos no se editan ni se borran, por lo que el ID (max+1 sin borrados)
// también codifica el orden de inserción.
type StockMovementRepository struct {
	store *Store
}

// NewStockMovementRepository construye el repositorio sobre el store.
func NewStockMovementRepository(store *Store) *StockMovementRepository {
	return &StockMovementRepository{store: store}
}

// Create registra un asiento; el ID se asigna en la sección crítica.
func (r *StockMovementRepository) Create(movement *entity.StockMovement) error {
	if err := validateMovement(movement); err != nil {
		return err
	}
	movement.ID = r.store.movements.insert(*movement, func(m *entity.StockMovement, id int64) { m.ID = id })
	return nil
}

// CreateBatch registra un lote completo o nada: valida todos los asientos
// antes de escribir el primero, bajo un solo lock de la colección.
func (r *StockMovementRepository) CreateBatch(movements []*entity.StockMovement) error {
	for _, m := range movements {
		if err := validateMovement(m); err != nil {
			return err
		}
	}
	c := &r.store.movements
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range movements {
		m.ID = nextID(c.items)
		c.items[m.ID] = *m
	}
	return nil
}

// GetByID devuelve una copia del asiento, o (nil, nil) si no existe.
func (r *StockMovementRepository) GetByID(id int64) (*entity.StockMovement, error) {
	movement, ok := r.store.movements.get(id)
	if !ok {
		return nil, nil
	}
	return &movement, nil
}

// List devuelve una copia de la colección (el orden lo impone el caller).
func (r *StockMovementRepository) List() ([]entity.StockMovement, error) {
	return r.store.movements.snapshot(), nil
}

// BalanceByProduct suma con signo de todos los asientos del producto. Es la
// definición del stock actual; se calcula bajo demanda para que nunca pueda
// divergir del libro.
func (r *StockMovementRepository) BalanceByProduct(productID int64) (decimal.Decimal, error) {
	c := &r.store.movements
	c.mu.RLock()
	defer c.mu.RUnlock()
	balance := decimal.Zero
	for _, m := range c.items {
		if m.ProductID == productID {
			balance = balance.Add(m.Quantity)
		}
	}
	return balance, nil
}

func validateMovement(m *entity.StockMovement) error {
	if m == nil || m.ProductID <= 0 || m.Quantity.IsZero() || !entity.ValidMovementType(m.Type) {
		return domain.ErrInvalidInput
	}
	return nil
}
