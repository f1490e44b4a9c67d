package entity

import "time"

// Unit unidad de medida; catálogo simple referenciado por productos vía UnitID.
type Unit struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
