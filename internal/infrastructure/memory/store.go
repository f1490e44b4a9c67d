package memory

import (
	"sync"

	"github.com/jhoicas/Inventario-core/internal/domain/entity"
)

// collection colección en memoria de una familia de entidades, guardada por
// su propio RWMutex. Toda secuencia leer-luego-escribir (asignación de ID,
// conteo de consecutivos, check-and-set de estado) ocurre dentro de una sola
// sección crítica de la colección dueña.
type collection[T any] struct {
	mu    sync.RWMutex
	items map[int64]T
}

func (c *collection[T]) get(id int64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// insert asigna el siguiente ID y guarda el registro en una sola sección
// crítica; dos inserciones concurrentes nunca obtienen el mismo ID.
func (c *collection[T]) insert(item T, setID func(*T, int64)) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := nextID(c.items)
	setID(&item, id)
	c.items[id] = item
	return id
}

// replace sustituye el registro completo (reemplazo atómico, nunca campo a
// campo). Devuelve false si el ID no existe.
func (c *collection[T]) replace(id int64, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

func (c *collection[T]) remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

func (c *collection[T]) snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	return out
}

// Store agrupa las colecciones en memoria que hacen de "base de datos" del
// núcleo. Es estado de vida del proceso: sin durabilidad entre reinicios
// (limitación explícita del diseño). Se construye y se pasa por referencia;
// no hay estado ambiente a nivel de paquete.
type Store struct {
	// txMu serializa las mutaciones que cruzan colecciones (ver TxRunner).
	txMu sync.Mutex

	categories collection[entity.Category]
	units      collection[entity.Unit]
	suppliers  collection[entity.Supplier]
	products   collection[entity.Product]
	movements  collection[entity.StockMovement]
	orders     collection[entity.PurchaseOrder]
}

// New construye un store vacío.
func New() *Store {
	s := &Store{}
	s.initMaps()
	return s
}

func (s *Store) initMaps() {
	s.categories.items = make(map[int64]entity.Category)
	s.units.items = make(map[int64]entity.Unit)
	s.suppliers.items = make(map[int64]entity.Supplier)
	s.products.items = make(map[int64]entity.Product)
	s.movements.items = make(map[int64]entity.StockMovement)
	s.orders.items = make(map[int64]entity.PurchaseOrder)
}

// Reset vacía todas las colecciones. Útil en tests y en modo demo.
func (s *Store) Reset() {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	for _, mu := range []*sync.RWMutex{
		&s.categories.mu, &s.units.mu, &s.suppliers.mu,
		&s.products.mu, &s.movements.mu, &s.orders.mu,
	} {
		mu.Lock()
	}
	s.initMaps()
	for _, mu := range []*sync.RWMutex{
		&s.categories.mu, &s.units.mu, &s.suppliers.mu,
		&s.products.mu, &s.movements.mu, &s.orders.mu,
	} {
		mu.Unlock()
	}
}
