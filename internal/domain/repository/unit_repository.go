package repository

import "github.com/jhoicas/Inventario-core/internal/domain/entity"

// UnitRepository define el puerto de persistencia para Unit (DIP).
type UnitRepository interface {
	Create(unit *entity.Unit) error
	GetByID(id int64) (*entity.Unit, error)
	Update(unit *entity.Unit) error
	Delete(id int64) error
	List() ([]entity.Unit, error)
}
