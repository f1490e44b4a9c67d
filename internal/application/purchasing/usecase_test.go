package purchasing_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/application/inventory"
	"github.com/jhoicas/Inventario-core/internal/application/purchasing"
	"github.com/jhoicas/Inventario-core/internal/application/usecase"
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/infrastructure/memory"
)

// entorno arma un store en memoria con un producto y un proveedor listos
// para crear órdenes.
type entorno struct {
	store      *memory.Store
	orders     *purchasing.PurchaseOrderUseCase
	ledger     *inventory.LedgerUseCase
	products   *usecase.ProductUseCase
	productID  int64
	supplierID int64
}

func nuevoEntorno(t *testing.T) *entorno {
	t.Helper()
	store := memory.New()
	productRepo := memory.NewProductRepository(store)
	movementRepo := memory.NewStockMovementRepository(store)
	orderRepo := memory.NewPurchaseOrderRepository(store)
	supplierRepo := memory.NewSupplierRepository(store)
	categoryRepo := memory.NewCategoryRepository(store)
	unitRepo := memory.NewUnitRepository(store)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo, productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, unitRepo, movementRepo)

	cat, err := categoryUC.Create(dto.CreateLookupRequest{Name: "Ferretería"})
	require.NoError(t, err)
	unit, err := unitUC.Create(dto.CreateLookupRequest{Name: "Unidad"})
	require.NoError(t, err)
	sup, err := supplierUC.Create(dto.CreateSupplierRequest{Name: "Proveedor Uno"})
	require.NoError(t, err)

	product, err := productUC.Create("", dto.CreateProductRequest{
		Code:       "WID-001",
		Name:       "Widget",
		CategoryID: cat.ID,
		UnitID:     unit.ID,
		CostPrice:  decimal.NewFromInt(2500),
		SalePrice:  decimal.NewFromInt(4000),
	})
	require.NoError(t, err)
	require.True(t, product.Stock.IsZero(), "producto nuevo sin stock inicial arranca en cero")

	return &entorno{
		store:      store,
		orders:     purchasing.NewPurchaseOrderUseCase(memory.NewTxRunner(store), orderRepo, movementRepo, productRepo, supplierRepo),
		ledger:     inventory.NewLedgerUseCase(movementRepo, productRepo),
		products:   productUC,
		productID:  product.ID,
		supplierID: sup.ID,
	}
}

func (e *entorno) crearOrden(t *testing.T, cantidad int64) *dto.PurchaseOrderResponse {
	t.Helper()
	out, err := e.orders.Create("comprador", dto.CreatePurchaseOrderRequest{
		SupplierID: e.supplierID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: e.productID, Quantity: decimal.NewFromInt(cantidad), UnitCost: decimal.NewFromInt(2500)},
		},
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_QuedaEnDraftConHistorialSembrado(t *testing.T) {
	e := nuevoEntorno(t)
	orden := e.crearOrden(t, 10)

	assert.Equal(t, string(entity.PurchaseOrderStatusDraft), orden.Status)
	assert.Regexp(t, `^PO-\d{6}-\d{3}$`, orden.Number)
	require.Len(t, orden.History, 1)
	assert.Equal(t, string(entity.PurchaseOrderStatusDraft), orden.History[0].Status)
	assert.Equal(t, "comprador", orden.History[0].Actor)
}

func TestCreate_SinRenglonesFalla(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.orders.Create("", dto.CreatePurchaseOrderRequest{SupplierID: e.supplierID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_ProveedorInexistenteFalla(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.orders.Create("", dto.CreatePurchaseOrderRequest{
		SupplierID: 999,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: e.productID, Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CantidadNoPositivaFalla(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.orders.Create("", dto.CreatePurchaseOrderRequest{
		SupplierID: e.supplierID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: e.productID, Quantity: decimal.Zero, UnitCost: decimal.NewFromInt(1)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo: DRAFT -> ORDERED -> RECEIVED
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: orden con 10 Widgets recorre el ciclo completo.
// Debe quedar exactamente un asiento de +10 con el número de la orden como
// referencia, y el stock del producto en 10.
func TestTransition_RecepcionGeneraAsientoYStock(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	orden := e.crearOrden(t, 10)

	_, err := e.orders.Transition(ctx, orden.ID, "ORDERED", "comprador")
	require.NoError(t, err)
	recibida, err := e.orders.Transition(ctx, orden.ID, "RECEIVED", "bodeguero")
	require.NoError(t, err)

	assert.Equal(t, string(entity.PurchaseOrderStatusReceived), recibida.Status)
	require.Len(t, recibida.History, 3)
	assert.Equal(t, "bodeguero", recibida.History[2].Actor)

	movimientos, err := e.ledger.List(dto.MovementListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, movimientos.Total, "exactamente un asiento nuevo")
	asiento := movimientos.Data[0]
	assert.Equal(t, entity.MovementTypePurchaseReceipt, asiento.Type)
	assert.True(t, asiento.Quantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, orden.Number, asiento.Reference)
	assert.NotEmpty(t, asiento.BatchID)

	producto, err := e.products.GetByID(e.productID)
	require.NoError(t, err)
	assert.True(t, producto.Stock.Equal(decimal.NewFromInt(10)), "stock == suma de movimientos")
}

func TestTransition_RecepcionConVariosRenglones(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()

	// segundo producto para la misma orden
	otro, err := e.products.Create("", dto.CreateProductRequest{
		Code: "WID-002", Name: "Widget Grande",
		CategoryID: 1, UnitID: 1,
		CostPrice: decimal.NewFromInt(5000), SalePrice: decimal.NewFromInt(8000),
	})
	require.NoError(t, err)

	orden, err := e.orders.Create("", dto.CreatePurchaseOrderRequest{
		SupplierID: e.supplierID,
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: e.productID, Quantity: decimal.NewFromInt(4), UnitCost: decimal.NewFromInt(2500)},
			{ProductID: otro.ID, Quantity: decimal.NewFromInt(6), UnitCost: decimal.NewFromInt(5000)},
		},
	})
	require.NoError(t, err)

	_, err = e.orders.Transition(ctx, orden.ID, "ORDERED", "")
	require.NoError(t, err)
	_, err = e.orders.Transition(ctx, orden.ID, "RECEIVED", "")
	require.NoError(t, err)

	movimientos, err := e.ledger.List(dto.MovementListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 2, movimientos.Total, "un asiento por renglón")
	assert.Equal(t, movimientos.Data[0].BatchID, movimientos.Data[1].BatchID,
		"los asientos de una misma recepción comparten lote")

	balance, err := e.ledger.Balance(otro.ID)
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(6)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_DesdeTerminalFallaSinAsientos(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	orden := e.crearOrden(t, 10)

	_, err := e.orders.Transition(ctx, orden.ID, "CANCELLED", "")
	require.NoError(t, err)

	casos := []string{"ORDERED", "RECEIVED", "DRAFT", "CANCELLED"}
	for _, destino := range casos {
		_, err := e.orders.Transition(ctx, orden.ID, destino, "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "CANCELLED -> %s", destino)
	}

	movimientos, err := e.ledger.List(dto.MovementListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, movimientos.Total, "los intentos fallidos no generan asientos")

	producto, err := e.products.GetByID(e.productID)
	require.NoError(t, err)
	assert.True(t, producto.Stock.IsZero())
}

func TestTransition_DraftDirectoAReceivedFalla(t *testing.T) {
	e := nuevoEntorno(t)
	orden := e.crearOrden(t, 5)

	_, err := e.orders.Transition(context.Background(), orden.ID, "RECEIVED", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	movimientos, err := e.ledger.List(dto.MovementListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, movimientos.Total)
}

func TestTransition_RecepcionDobleNoDuplicaStock(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	orden := e.crearOrden(t, 10)

	_, err := e.orders.Transition(ctx, orden.ID, "ORDERED", "")
	require.NoError(t, err)
	_, err = e.orders.Transition(ctx, orden.ID, "RECEIVED", "")
	require.NoError(t, err)

	_, err = e.orders.Transition(ctx, orden.ID, "RECEIVED", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	balance, err := e.ledger.Balance(e.productID)
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(10)), "una sola acreditación de stock")
}

// Un borrado concurrente con la recepción se serializa en la sección crítica
// global: o el borrado gana y la recepción falla sin dejar asientos, o la
// recepción completa su cascada y el borrado llega después. Nunca quedan
// asientos huérfanos de una transición fallida.
func TestDelete_SeSerializaConLaRecepcion(t *testing.T) {
	for i := 0; i < 20; i++ {
		e := nuevoEntorno(t)
		ctx := context.Background()
		orden := e.crearOrden(t, 10)
		_, err := e.orders.Transition(ctx, orden.ID, "ORDERED", "")
		require.NoError(t, err)

		var wg sync.WaitGroup
		var transitionErr, deleteErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, transitionErr = e.orders.Transition(ctx, orden.ID, "RECEIVED", "")
		}()
		go func() {
			defer wg.Done()
			deleteErr = e.orders.Delete(ctx, orden.ID)
		}()
		wg.Wait()

		balance, err := e.ledger.Balance(e.productID)
		require.NoError(t, err)
		if transitionErr != nil {
			assert.ErrorIs(t, transitionErr, domain.ErrNotFound, "el borrado ganó")
			assert.NoError(t, deleteErr)
			assert.True(t, balance.Balance.IsZero(),
				"una recepción fallida no deja asientos; balance quedó %s", balance.Balance)
		} else {
			assert.True(t, balance.Balance.Equal(decimal.NewFromInt(10)),
				"la recepción ganó completa; balance quedó %s", balance.Balance)
		}
	}
}

func TestDelete_OrdenInexistente(t *testing.T) {
	e := nuevoEntorno(t)
	err := e.orders.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransition_OrdenInexistente(t *testing.T) {
	e := nuevoEntorno(t)
	_, err := e.orders.Transition(context.Background(), 999, "ORDERED", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición y listado
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_SoloEnDraft(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()
	orden := e.crearOrden(t, 10)

	nueva := []dto.PurchaseOrderItemRequest{
		{ProductID: e.productID, Quantity: decimal.NewFromInt(20), UnitCost: decimal.NewFromInt(2400)},
	}
	editada, err := e.orders.Update(ctx, orden.ID, dto.UpdatePurchaseOrderRequest{Items: nueva})
	require.NoError(t, err)
	assert.True(t, editada.Items[0].Quantity.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, orden.Number, editada.Number, "el número no se reasigna al editar")

	_, err = e.orders.Transition(ctx, orden.ID, "ORDERED", "")
	require.NoError(t, err)
	_, err = e.orders.Update(ctx, orden.ID, dto.UpdatePurchaseOrderRequest{Items: nueva})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestList_FiltraPorEstado(t *testing.T) {
	e := nuevoEntorno(t)
	ctx := context.Background()

	a := e.crearOrden(t, 1)
	e.crearOrden(t, 2)
	_, err := e.orders.Transition(ctx, a.ID, "ORDERED", "")
	require.NoError(t, err)

	res, err := e.orders.List(dto.PurchaseOrderListQuery{Status: "DRAFT", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = e.orders.List(dto.PurchaseOrderListQuery{Status: "ORDERED", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, a.ID, res.Data[0].ID)

	_, err = e.orders.List(dto.PurchaseOrderListQuery{Status: "APPROVED", Page: 1, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
