package repository

import "github.com/jhoicas/Inventario-core/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Create asigna el ID dentro de la sección crítica de la colección.
// GetByID devuelve (nil, nil) cuando no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
	List() ([]entity.Product, error)
	CountByCategory(categoryID int64) (int, error)
	CountByUnit(unitID int64) (int, error)
}
