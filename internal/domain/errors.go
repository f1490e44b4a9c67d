package domain

import "errors"

// Errores de dominio (sin dependencias externas). El caller HTTP los mapea
// a códigos de respuesta; el núcleo nunca los silencia ni los reintenta.
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidTransition   = errors.New("transición de estado inválida")
	ErrReferentialConflict = errors.New("conflicto de integridad referencial")
	ErrSequenceExhausted   = errors.New("consecutivo de numeración agotado")
	ErrDuplicate           = errors.New("recurso duplicado")
)
