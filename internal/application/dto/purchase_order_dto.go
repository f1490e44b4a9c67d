package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderItemRequest renglón de una orden de compra.
type PurchaseOrderItemRequest struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseOrderRequest entrada para crear una orden (queda en DRAFT).
type CreatePurchaseOrderRequest struct {
	SupplierID int64                      `json:"supplier_id"`
	Items      []PurchaseOrderItemRequest `json:"items"`
}

// UpdatePurchaseOrderRequest entrada para editar una orden en DRAFT.
// Items en nil deja los renglones como están; una lista vacía es inválida.
type UpdatePurchaseOrderRequest struct {
	SupplierID *int64                     `json:"supplier_id"`
	Items      []PurchaseOrderItemRequest `json:"items"`
}

// TransitionRequest entrada para transicionar la orden de estado.
type TransitionRequest struct {
	Status string `json:"status"`
}

// StatusChangeResponse entrada del historial de la orden.
type StatusChangeResponse struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
	Actor  string    `json:"actor"`
}

// PurchaseOrderItemResponse renglón de la orden en respuestas.
type PurchaseOrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// PurchaseOrderResponse salida de una orden de compra.
type PurchaseOrderResponse struct {
	ID         int64                       `json:"id"`
	Number     string                      `json:"number"`
	SupplierID int64                       `json:"supplier_id"`
	Items      []PurchaseOrderItemResponse `json:"items"`
	Status     string                      `json:"status"`
	History    []StatusChangeResponse      `json:"history"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`
}

// PurchaseOrderListQuery filtros de listado de órdenes. Status vacío y
// SupplierID en cero significan sin filtro; Search aplica sobre el número.
type PurchaseOrderListQuery struct {
	Search     string
	Status     string
	SupplierID int64
	Page       int
	Limit      int
}
