package repository

import "github.com/jhoicas/Inventario-core/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
	List() ([]entity.Category, error)
}
