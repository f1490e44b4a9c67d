package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-core/internal/domain"
)

// Estados de una orden de compra.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "DRAFT"
	PurchaseOrderStatusOrdered   PurchaseOrderStatus = "ORDERED"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// SystemActor actor por defecto cuando el llamador no aporta identidad.
const SystemActor = "system"

// IsValid reporta si s es un estado conocido.
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusDraft, PurchaseOrderStatusOrdered,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reporta si s no admite más transiciones.
func (s PurchaseOrderStatus) IsTerminal() bool {
	return s == PurchaseOrderStatusReceived || s == PurchaseOrderStatusCancelled
}

// CanTransitionTo valida la máquina de estados:
// DRAFT -> ORDERED | CANCELLED; ORDERED -> RECEIVED | CANCELLED.
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusDraft:
		return target == PurchaseOrderStatusOrdered || target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusOrdered:
		return target == PurchaseOrderStatusReceived || target == PurchaseOrderStatusCancelled
	}
	return false
}

// PurchaseOrderItem renglón de una orden de compra.
type PurchaseOrderItem struct {
	ProductID int64
	Quantity  decimal.Decimal
	UnitCost  decimal.Decimal
}

// StatusChange entrada del historial de transiciones de una orden.
type StatusChange struct {
	Status PurchaseOrderStatus
	At     time.Time
	Actor  string
}

// PurchaseOrder orden de compra. Number se asigna al crear con formato
// PO-<YYYYMM>-<NNN> y nunca se reasigna. History es append-only, arranca con
// la entrada DRAFT de la creación y cumple siempre len >= 1 y
// History[len-1].Status == Status.
type PurchaseOrder struct {
	ID         int64
	Number     string
	SupplierID int64
	Items      []PurchaseOrderItem
	Status     PurchaseOrderStatus
	History    []StatusChange
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewPurchaseOrder construye una orden en DRAFT con el historial sembrado.
// ID y Number los asigna el repositorio al persistirla.
func NewPurchaseOrder(supplierID int64, items []PurchaseOrderItem, at time.Time, actor string) *PurchaseOrder {
	if actor == "" {
		actor = SystemActor
	}
	return &PurchaseOrder{
		SupplierID: supplierID,
		Items:      items,
		Status:     PurchaseOrderStatusDraft,
		History: []StatusChange{
			{Status: PurchaseOrderStatusDraft, At: at, Actor: actor},
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// Transition aplica una transición de estado: valida la máquina, cambia
// Status y registra exactamente una entrada en History. Desde un estado
// terminal siempre falla con ErrInvalidTransition.
func (o *PurchaseOrder) Transition(target PurchaseOrderStatus, at time.Time, actor string) error {
	if !target.IsValid() || !o.Status.CanTransitionTo(target) {
		return domain.ErrInvalidTransition
	}
	if actor == "" {
		actor = SystemActor
	}
	o.Status = target
	o.History = append(o.History, StatusChange{Status: target, At: at, Actor: actor})
	o.UpdatedAt = at
	return nil
}
