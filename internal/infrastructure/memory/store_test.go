package memory

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Asignación de IDs bajo concurrencia
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepository_CreacionConcurrenteIDsUnicos(t *testing.T) {
	store := New()
	repo := NewProductRepository(store)
	const n = 100

	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p := &entity.Product{Code: fmt.Sprintf("P-%03d", i), Name: "Producto"}
			assert.NoError(t, repo.Create(p))
			ids <- p.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	vistos := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, vistos[id], "ID duplicado: %d", id)
		vistos[id] = true
	}
	assert.Len(t, vistos, n)
}

// N órdenes creadas el mismo día de forma concurrente reciben N números
// distintos, con ceros a tres dígitos y sin huecos respecto de N.
func TestPurchaseOrderRepository_NumeracionConcurrenteSinHuecos(t *testing.T) {
	store := New()
	repo := NewPurchaseOrderRepository(store)
	now := time.Now()
	const n = 50

	numbers := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o := entity.NewPurchaseOrder(1, nil, now, "")
			assert.NoError(t, repo.Create(o))
			numbers <- o.Number
		}()
	}
	wg.Wait()
	close(numbers)

	vistos := make(map[string]bool, n)
	for num := range numbers {
		assert.False(t, vistos[num], "número duplicado: %s", num)
		vistos[num] = true
	}
	periodo := now.Format("200601")
	for seq := 1; seq <= n; seq++ {
		esperado := fmt.Sprintf("PO-%s-%03d", periodo, seq)
		assert.True(t, vistos[esperado], "falta el consecutivo %s", esperado)
	}
}

func TestPurchaseOrderRepository_NumeroNuncaSeReasigna(t *testing.T) {
	store := New()
	repo := NewPurchaseOrderRepository(store)

	o := entity.NewPurchaseOrder(1, nil, time.Now(), "")
	require.NoError(t, repo.Create(o))
	numero := o.Number

	require.NoError(t, o.Transition(entity.PurchaseOrderStatusOrdered, time.Now(), ""))
	require.NoError(t, repo.Update(o))

	guardada, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	require.NotNil(t, guardada)
	assert.Equal(t, numero, guardada.Number)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro de inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestStockMovementRepository_BalancePorProducto(t *testing.T) {
	store := New()
	repo := NewStockMovementRepository(store)

	asientos := []struct {
		producto int64
		tipo     string
		cantidad int64
	}{
		{1, entity.MovementTypePurchaseReceipt, 10},
		{1, entity.MovementTypeSale, -3},
		{1, entity.MovementTypeAdjustment, -1},
		{2, entity.MovementTypePurchaseReceipt, 7},
	}
	for _, a := range asientos {
		require.NoError(t, repo.Create(&entity.StockMovement{
			ProductID: a.producto,
			Type:      a.tipo,
			Quantity:  decimal.NewFromInt(a.cantidad),
			CreatedAt: time.Now(),
		}))
	}

	balance, err := repo.BalanceByProduct(1)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(6)), "10 - 3 - 1 = 6, quedó %s", balance)

	balance, err = repo.BalanceByProduct(2)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(7)))

	balance, err = repo.BalanceByProduct(99)
	require.NoError(t, err)
	assert.True(t, balance.IsZero(), "producto sin movimientos tiene balance cero")
}

func TestStockMovementRepository_LoteTodoONada(t *testing.T) {
	store := New()
	repo := NewStockMovementRepository(store)

	lote := []*entity.StockMovement{
		{ProductID: 1, Type: entity.MovementTypePurchaseReceipt, Quantity: decimal.NewFromInt(5), CreatedAt: time.Now()},
		{ProductID: 2, Type: entity.MovementTypePurchaseReceipt, Quantity: decimal.Zero, CreatedAt: time.Now()}, // inválido
	}
	err := repo.CreateBatch(lote)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	existentes, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, existentes, "un lote inválido no escribe ningún asiento")
}

func TestStockMovementRepository_TipoDesconocidoFalla(t *testing.T) {
	store := New()
	repo := NewStockMovementRepository(store)
	err := repo.Create(&entity.StockMovement{
		ProductID: 1,
		Type:      "TRANSFER",
		Quantity:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento de copias
// ──────────────────────────────────────────────────────────────────────────────

// Mutar la copia que entrega el repositorio no debe tocar el registro
// guardado: el reemplazo es atómico y explícito vía Update.
func TestPurchaseOrderRepository_CopiasAisladas(t *testing.T) {
	store := New()
	repo := NewPurchaseOrderRepository(store)

	o := entity.NewPurchaseOrder(1, []entity.PurchaseOrderItem{
		{ProductID: 1, Quantity: decimal.NewFromInt(2), UnitCost: decimal.NewFromInt(100)},
	}, time.Now(), "")
	require.NoError(t, repo.Create(o))

	copia, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	require.NotNil(t, copia)
	require.NoError(t, copia.Transition(entity.PurchaseOrderStatusOrdered, time.Now(), "x"))
	copia.Items[0].Quantity = decimal.NewFromInt(999)

	guardada, err := repo.GetByID(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseOrderStatusDraft, guardada.Status)
	require.Len(t, guardada.History, 1)
	assert.True(t, guardada.Items[0].Quantity.Equal(decimal.NewFromInt(2)))
}

func TestStore_Reset(t *testing.T) {
	store := New()
	SeedDemo(store)

	products, err := NewProductRepository(store).List()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	store.Reset()

	products, err = NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, products)
}

// El seed de demo respeta el invariante: el stock inicial entra como
// asientos de ajuste, nunca como campo suelto del producto.
func TestSeedDemo_StockViaLibro(t *testing.T) {
	store := New()
	SeedDemo(store)

	movRepo := NewStockMovementRepository(store)
	movements, err := movRepo.List()
	require.NoError(t, err)
	require.NotEmpty(t, movements)
	for _, m := range movements {
		assert.Equal(t, entity.MovementTypeAdjustment, m.Type)
		assert.Equal(t, "ALTA", m.Reference)
	}
}
