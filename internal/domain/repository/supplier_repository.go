package repository

import "github.com/jhoicas/Inventario-core/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id int64) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id int64) error
	List() ([]entity.Supplier, error)
}
