package dto

import "time"

// CreateLookupRequest entrada para crear una categoría o unidad.
type CreateLookupRequest struct {
	Name string `json:"name"`
}

// UpdateLookupRequest entrada para renombrar una categoría o unidad.
type UpdateLookupRequest struct {
	Name *string `json:"name"`
}

// LookupResponse salida de un catálogo (categoría o unidad).
type LookupResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LookupDeleteResponse resultado de borrar un catálogo. IsOrphan en true
// avisa que quedan productos apuntando a un registro que ya no existe: el
// borrado procede igual (chequeo blando, decisión de diseño documentada).
type LookupDeleteResponse struct {
	Deleted  bool `json:"deleted"`
	IsOrphan bool `json:"is_orphan"`
}

// LookupListQuery filtros de listado de catálogos.
type LookupListQuery struct {
	Search string
	Page   int
	Limit  int
}
