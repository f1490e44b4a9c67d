package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. InitialStock distinto
// de cero se registra como asiento de ajuste en el libro (referencia ALTA):
// el producto nunca guarda stock propio.
type CreateProductRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CategoryID   int64           `json:"category_id"`
	UnitID       int64           `json:"unit_id"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	InitialStock decimal.Decimal `json:"initial_stock"`
}

// UpdateProductRequest entrada para actualizar un producto. No existe campo
// de stock: el stock solo cambia vía movimientos del libro.
type UpdateProductRequest struct {
	Code       *string          `json:"code"`
	Name       *string          `json:"name"`
	CategoryID *int64           `json:"category_id"`
	UnitID     *int64           `json:"unit_id"`
	CostPrice  *decimal.Decimal `json:"cost_price"`
	SalePrice  *decimal.Decimal `json:"sale_price"`
}

// ProductResponse salida de un producto. Stock es derivado: la suma con signo
// de los movimientos del libro al momento de la consulta.
type ProductResponse struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	CategoryID int64           `json:"category_id"`
	UnitID     int64           `json:"unit_id"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	SalePrice  decimal.Decimal `json:"sale_price"`
	Stock      decimal.Decimal `json:"stock"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ProductListQuery filtros de listado de productos. CategoryID/UnitID en
// cero significan sin filtro.
type ProductListQuery struct {
	Search     string
	CategoryID int64
	UnitID     int64
	Page       int
	Limit      int
}
