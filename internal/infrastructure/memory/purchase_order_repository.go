package memory

import (
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
)

// Ensure PurchaseOrderRepository implements repository.PurchaseOrderRepository.
var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepository)(nil)

// PurchaseOrderRepository repositorio en memoria de órdenes de compra.
type PurchaseOrderRepository struct {
	store *Store
}

// NewPurchaseOrderRepository construye el repositorio sobre el store.
func NewPurchaseOrderRepository(store *Store) *PurchaseOrderRepository {
	return &PurchaseOrderRepository{store: store}
}

// Create asigna ID y número de documento en una sola sección crítica: contar
// las órdenes del día y escribir la nueva no puede intercalarse con otro
// escritor o dos órdenes saldrían con el mismo consecutivo.
func (r *PurchaseOrderRepository) Create(order *entity.PurchaseOrder) error {
	if order == nil {
		return domain.ErrInvalidInput
	}
	c := &r.store.orders
	c.mu.Lock()
	defer c.mu.Unlock()

	sameDay := 0
	for _, existing := range c.items {
		if sameCalendarDay(existing.CreatedAt, order.CreatedAt) {
			sameDay++
		}
	}
	number, err := documentNumber("PO", order.CreatedAt, sameDay)
	if err != nil {
		return err
	}
	order.Number = number
	order.ID = nextID(c.items)
	c.items[order.ID] = cloneOrder(*order)
	return nil
}

// GetByID devuelve una copia profunda de la orden, o (nil, nil) si no existe.
func (r *PurchaseOrderRepository) GetByID(id int64) (*entity.PurchaseOrder, error) {
	order, ok := r.store.orders.get(id)
	if !ok {
		return nil, nil
	}
	order = cloneOrder(order)
	return &order, nil
}

// Update reemplaza el registro completo; Number nunca se reasigna aquí.
func (r *PurchaseOrderRepository) Update(order *entity.PurchaseOrder) error {
	if order == nil {
		return domain.ErrInvalidInput
	}
	if !r.store.orders.replace(order.ID, cloneOrder(*order)) {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina la orden. Ojo: el consecutivo diario se deriva del conteo de
// órdenes existentes, así que borrar puede reabrir números ya usados (brecha
// heredada del sistema original, documentada en DESIGN.md).
func (r *PurchaseOrderRepository) Delete(id int64) error {
	if !r.store.orders.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve copias profundas (el orden lo impone el caller).
func (r *PurchaseOrderRepository) List() ([]entity.PurchaseOrder, error) {
	orders := r.store.orders.snapshot()
	for i := range orders {
		orders[i] = cloneOrder(orders[i])
	}
	return orders, nil
}

// cloneOrder copia la orden incluyendo sus slices: Items e History no deben
// compartir arreglo de respaldo entre el store y los callers, o un append
// del caller podría verse a través de una lectura concurrente.
func cloneOrder(o entity.PurchaseOrder) entity.PurchaseOrder {
	o.Items = append([]entity.PurchaseOrderItem(nil), o.Items...)
	o.History = append([]entity.StatusChange(nil), o.History...)
	return o
}
