package memory

import (
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
)

// Ensure implementations of the lookup ports.
var _ repository.CategoryRepository = (*CategoryRepository)(nil)
var _ repository.UnitRepository = (*UnitRepository)(nil)
var _ repository.SupplierRepository = (*SupplierRepository)(nil)

// CategoryRepository repositorio en memoria de categorías.
type CategoryRepository struct {
	store *Store
}

// NewCategoryRepository construye el repositorio sobre el store.
func NewCategoryRepository(store *Store) *CategoryRepository {
	return &CategoryRepository{store: store}
}

func (r *CategoryRepository) Create(category *entity.Category) error {
	if category == nil {
		return domain.ErrInvalidInput
	}
	category.ID = r.store.categories.insert(*category, func(c *entity.Category, id int64) { c.ID = id })
	return nil
}

func (r *CategoryRepository) GetByID(id int64) (*entity.Category, error) {
	category, ok := r.store.categories.get(id)
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *CategoryRepository) Update(category *entity.Category) error {
	if category == nil {
		return domain.ErrInvalidInput
	}
	if !r.store.categories.replace(category.ID, *category) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(id int64) error {
	if !r.store.categories.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	return r.store.categories.snapshot(), nil
}

// UnitRepository repositorio en memoria de unidades de medida.
type UnitRepository struct {
	store *Store
}

// NewUnitRepository construye el repositorio sobre el store.
func NewUnitRepository(store *Store) *UnitRepository {
	return &UnitRepository{store: store}
}

func (r *UnitRepository) Create(unit *entity.Unit) error {
	if unit == nil {
		return domain.ErrInvalidInput
	}
	unit.ID = r.store.units.insert(*unit, func(u *entity.Unit, id int64) { u.ID = id })
	return nil
}

func (r *UnitRepository) GetByID(id int64) (*entity.Unit, error) {
	unit, ok := r.store.units.get(id)
	if !ok {
		return nil, nil
	}
	return &unit, nil
}

func (r *UnitRepository) Update(unit *entity.Unit) error {
	if unit == nil {
		return domain.ErrInvalidInput
	}
	if !r.store.units.replace(unit.ID, *unit) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UnitRepository) Delete(id int64) error {
	if !r.store.units.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *UnitRepository) List() ([]entity.Unit, error) {
	return r.store.units.snapshot(), nil
}

// SupplierRepository repositorio en memoria de proveedores.
type SupplierRepository struct {
	store *Store
}

// NewSupplierRepository construye el repositorio sobre el store.
func NewSupplierRepository(store *Store) *SupplierRepository {
	return &SupplierRepository{store: store}
}

func (r *SupplierRepository) Create(supplier *entity.Supplier) error {
	if supplier == nil {
		return domain.ErrInvalidInput
	}
	supplier.ID = r.store.suppliers.insert(*supplier, func(s *entity.Supplier, id int64) { s.ID = id })
	return nil
}

func (r *SupplierRepository) GetByID(id int64) (*entity.Supplier, error) {
	supplier, ok := r.store.suppliers.get(id)
	if !ok {
		return nil, nil
	}
	return &supplier, nil
}

func (r *SupplierRepository) Update(supplier *entity.Supplier) error {
	if supplier == nil {
		return domain.ErrInvalidInput
	}
	if !r.store.suppliers.replace(supplier.ID, *supplier) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepository) Delete(id int64) error {
	if !r.store.suppliers.remove(id) {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierRepository) List() ([]entity.Supplier, error) {
	return r.store.suppliers.snapshot(), nil
}
