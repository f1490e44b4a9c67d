package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest entrada para registrar un asiento manual en el
// libro: venta, ajuste o recepción suelta. El signo debe corresponder al
// tipo (recepción positiva, venta negativa, ajuste distinto de cero).
type RegisterMovementRequest struct {
	ProductID int64           `json:"product_id"`
	Type      string          `json:"type"`
	Quantity  decimal.Decimal `json:"quantity"`
	Reference string          `json:"reference"`
	Note      string          `json:"note"`
}

// MovementResponse salida de un asiento del libro.
type MovementResponse struct {
	ID          int64           `json:"id"`
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Reference   string          `json:"reference"`
	Note        string          `json:"note"`
	BatchID     string          `json:"batch_id,omitempty"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementListQuery filtros del historial: rango de fechas, producto y texto
// libre sobre nombre de producto y referencia.
type MovementListQuery struct {
	Search    string
	ProductID int64
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

// BalanceResponse balance actual de un producto: suma con signo de todos sus
// asientos en el libro.
type BalanceResponse struct {
	ProductID int64           `json:"product_id"`
	Balance   decimal.Decimal `json:"balance"`
}
