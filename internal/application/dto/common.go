package dto

// DefaultLimit tamaño de página por defecto en listados.
const DefaultLimit = 20

// ListResponse respuesta uniforme de todo listado: la página de datos, el
// total después de filtrar y antes de paginar, y la paginación solicitada.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
