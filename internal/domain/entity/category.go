package entity

import "time"

// Category catálogo simple referenciado por productos vía CategoryID.
// La referencia es débil: se resuelve por búsqueda, nunca se asume viva.
type Category struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
