package entity

import "time"

// Supplier proveedor referenciado por órdenes de compra.
type Supplier struct {
	ID        int64
	Name      string
	Contact   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
