package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
)

func ordenPrueba(t *testing.T) *entity.PurchaseOrder {
	t.Helper()
	items := []entity.PurchaseOrderItem{
		{ProductID: 1, Quantity: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(2500)},
	}
	return entity.NewPurchaseOrder(1, items, time.Now(), "comprador")
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransitionTo_TablaCompleta(t *testing.T) {
	casos := []struct {
		desde   entity.PurchaseOrderStatus
		hacia   entity.PurchaseOrderStatus
		permite bool
	}{
		{entity.PurchaseOrderStatusDraft, entity.PurchaseOrderStatusOrdered, true},
		{entity.PurchaseOrderStatusDraft, entity.PurchaseOrderStatusCancelled, true},
		{entity.PurchaseOrderStatusDraft, entity.PurchaseOrderStatusReceived, false},
		{entity.PurchaseOrderStatusDraft, entity.PurchaseOrderStatusDraft, false},
		{entity.PurchaseOrderStatusOrdered, entity.PurchaseOrderStatusReceived, true},
		{entity.PurchaseOrderStatusOrdered, entity.PurchaseOrderStatusCancelled, true},
		{entity.PurchaseOrderStatusOrdered, entity.PurchaseOrderStatusDraft, false},
		{entity.PurchaseOrderStatusReceived, entity.PurchaseOrderStatusCancelled, false},
		{entity.PurchaseOrderStatusReceived, entity.PurchaseOrderStatusOrdered, false},
		{entity.PurchaseOrderStatusCancelled, entity.PurchaseOrderStatusOrdered, false},
		{entity.PurchaseOrderStatusCancelled, entity.PurchaseOrderStatusDraft, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.permite, c.desde.CanTransitionTo(c.hacia),
			"%s -> %s", c.desde, c.hacia)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, entity.PurchaseOrderStatusDraft.IsTerminal())
	assert.False(t, entity.PurchaseOrderStatusOrdered.IsTerminal())
	assert.True(t, entity.PurchaseOrderStatusReceived.IsTerminal())
	assert.True(t, entity.PurchaseOrderStatusCancelled.IsTerminal())
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial
// ──────────────────────────────────────────────────────────────────────────────

// La creación cuenta como la primera transición: History queda sembrado con
// la entrada DRAFT y el actor que creó la orden.
func TestNewPurchaseOrder_SiembraHistorial(t *testing.T) {
	o := ordenPrueba(t)

	require.Len(t, o.History, 1)
	assert.Equal(t, entity.PurchaseOrderStatusDraft, o.History[0].Status)
	assert.Equal(t, "comprador", o.History[0].Actor)
	assert.Equal(t, o.Status, o.History[len(o.History)-1].Status)
}

func TestNewPurchaseOrder_ActorVacioUsaSystem(t *testing.T) {
	o := entity.NewPurchaseOrder(1, nil, time.Now(), "")
	require.Len(t, o.History, 1)
	assert.Equal(t, entity.SystemActor, o.History[0].Actor)
}

func TestTransition_AgregaUnaEntradaPorCambio(t *testing.T) {
	o := ordenPrueba(t)

	require.NoError(t, o.Transition(entity.PurchaseOrderStatusOrdered, time.Now(), "bodeguero"))
	require.NoError(t, o.Transition(entity.PurchaseOrderStatusReceived, time.Now(), ""))

	require.Len(t, o.History, 3)
	assert.Equal(t, entity.PurchaseOrderStatusDraft, o.History[0].Status)
	assert.Equal(t, entity.PurchaseOrderStatusOrdered, o.History[1].Status)
	assert.Equal(t, entity.PurchaseOrderStatusReceived, o.History[2].Status)
	assert.Equal(t, entity.SystemActor, o.History[2].Actor, "actor vacío cae a system")

	// Invariante: el último estado del historial siempre coincide con Status
	assert.Equal(t, o.Status, o.History[len(o.History)-1].Status)

	// Cada par consecutivo del historial es una transición válida
	for i := 1; i < len(o.History); i++ {
		assert.True(t, o.History[i-1].Status.CanTransitionTo(o.History[i].Status))
	}
}

func TestTransition_DesdeTerminalFalla(t *testing.T) {
	o := ordenPrueba(t)
	require.NoError(t, o.Transition(entity.PurchaseOrderStatusOrdered, time.Now(), ""))
	require.NoError(t, o.Transition(entity.PurchaseOrderStatusCancelled, time.Now(), ""))

	antes := len(o.History)
	err := o.Transition(entity.PurchaseOrderStatusOrdered, time.Now(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Len(t, o.History, antes, "una transición fallida no toca el historial")
	assert.Equal(t, entity.PurchaseOrderStatusCancelled, o.Status)
}

func TestTransition_EstadoDesconocidoFalla(t *testing.T) {
	o := ordenPrueba(t)
	err := o.Transition(entity.PurchaseOrderStatus("APPROVED"), time.Now(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
