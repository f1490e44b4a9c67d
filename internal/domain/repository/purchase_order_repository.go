package repository

import "github.com/jhoicas/Inventario-core/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para órdenes de
// compra (DIP). Create asigna ID y Number en una sola sección crítica: el
// conteo del consecutivo y la inserción no pueden intercalarse con otro
// escritor o habría números duplicados.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id int64) (*entity.PurchaseOrder, error)
	// Update reemplaza el registro completo de forma atómica; ningún lector
	// observa una orden a medio escribir.
	Update(order *entity.PurchaseOrder) error
	Delete(id int64) error
	List() ([]entity.PurchaseOrder, error)
}
