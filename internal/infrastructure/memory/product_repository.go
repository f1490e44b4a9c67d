package memory

import (
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
)

// Ensure ProductRepository implements repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepository)(nil)

// ProductRepository repositorio en memoria de productos.
type ProductRepository struct {
	store *Store
}

// NewProductRepository construye el repositorio sobre el store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// Create asigna el ID y guarda el producto en una sola sección crítica.
func (r *ProductRepository) Create(product *entity.Product) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	product.ID = r.store.products.insert(*product, func(p *entity.Product, id int64) { p.ID = id })
	return nil
}

// GetByID devuelve una copia del producto, o (nil, nil) si no existe.
func (r *ProductRepository) GetByID(id int64) (*entity.Product, error) {
	product, ok := r.store.products.get(id)
	if !ok {
		return nil, nil
	}
	return &product, nil
}

// Update reemplaza el registro completo.
func (r *ProductRepository) Update(product *entity.Product) error {
	if product == nil {
		return domain.ErrInvalidInput
	}
	if !r.store.products.replace(product.ID, *product) {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el producto.
func (r *ProductRepository) Delete(id int64) error {
	if !r.store.products.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve una copia de la colección (el orden lo impone el caller).
func (r *ProductRepository) List() ([]entity.Product, error) {
	return r.store.products.snapshot(), nil
}

// CountByCategory cuenta productos que referencian la categoría.
func (r *ProductRepository) CountByCategory(categoryID int64) (int, error) {
	return r.countWhere(func(p entity.Product) bool { return p.CategoryID == categoryID })
}

// CountByUnit cuenta productos que referencian la unidad.
func (r *ProductRepository) CountByUnit(unitID int64) (int, error) {
	return r.countWhere(func(p entity.Product) bool { return p.UnitID == unitID })
}

func (r *ProductRepository) countWhere(match func(entity.Product) bool) (int, error) {
	c := &r.store.products
	c.mu.RLock()
	defer c.mu.RUnlock()
	n := 0
	for _, p := range c.items {
		if match(p) {
			n++
		}
	}
	return n, nil
}
