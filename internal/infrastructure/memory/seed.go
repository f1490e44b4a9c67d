package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-core/internal/domain/entity"
)

// SeedDemo carga un juego pequeño de datos de demostración para entornos de
// desarrollo (SEED_DEMO=true). El stock inicial entra como asientos de ajuste
// en el libro, nunca como un campo suelto: el invariante stock == suma de
// movimientos vale desde el primer instante.
func SeedDemo(s *Store) {
	now := time.Now()

	categoryRepo := NewCategoryRepository(s)
	unitRepo := NewUnitRepository(s)
	supplierRepo := NewSupplierRepository(s)
	productRepo := NewProductRepository(s)
	movementRepo := NewStockMovementRepository(s)

	categories := []entity.Category{
		{Name: "Bebidas", CreatedAt: now, UpdatedAt: now},
		{Name: "Abarrotes", CreatedAt: now, UpdatedAt: now},
		{Name: "Aseo", CreatedAt: now, UpdatedAt: now},
	}
	for i := range categories {
		_ = categoryRepo.Create(&categories[i])
	}

	units := []entity.Unit{
		{Name: "Unidad", CreatedAt: now, UpdatedAt: now},
		{Name: "Caja", CreatedAt: now, UpdatedAt: now},
		{Name: "Kilogramo", CreatedAt: now, UpdatedAt: now},
	}
	for i := range units {
		_ = unitRepo.Create(&units[i])
	}

	suppliers := []entity.Supplier{
		{Name: "Distribuidora El Centro", Contact: "Marta Ríos", Phone: "3015550101", Email: "ventas@elcentro.co", CreatedAt: now, UpdatedAt: now},
		{Name: "Importadora La Cosecha", Contact: "Julián Pardo", Phone: "3125550202", Email: "pedidos@lacosecha.co", CreatedAt: now, UpdatedAt: now},
	}
	for i := range suppliers {
		_ = supplierRepo.Create(&suppliers[i])
	}

	products := []struct {
		product entity.Product
		initial int64
	}{
		{entity.Product{Code: "BEB-001", Name: "Agua Mineral 600ml", CategoryID: categories[0].ID, UnitID: units[0].ID, CostPrice: decimal.NewFromInt(900), SalePrice: decimal.NewFromInt(1500), CreatedAt: now, UpdatedAt: now}, 48},
		{entity.Product{Code: "BEB-002", Name: "Café Molido 500g", CategoryID: categories[0].ID, UnitID: units[0].ID, CostPrice: decimal.NewFromInt(9800), SalePrice: decimal.NewFromInt(14500), CreatedAt: now, UpdatedAt: now}, 20},
		{entity.Product{Code: "ABA-001", Name: "Azúcar 1kg", CategoryID: categories[1].ID, UnitID: units[2].ID, CostPrice: decimal.NewFromInt(3200), SalePrice: decimal.NewFromInt(4800), CreatedAt: now, UpdatedAt: now}, 35},
		{entity.Product{Code: "ASE-001", Name: "Jabón de Barra", CategoryID: categories[2].ID, UnitID: units[0].ID, CostPrice: decimal.NewFromInt(1800), SalePrice: decimal.NewFromInt(2900), CreatedAt: now, UpdatedAt: now}, 0},
	}
	for i := range products {
		_ = productRepo.Create(&products[i].product)
		if products[i].initial != 0 {
			_ = movementRepo.Create(&entity.StockMovement{
				ProductID: products[i].product.ID,
				Type:      entity.MovementTypeAdjustment,
				Quantity:  decimal.NewFromInt(products[i].initial),
				Reference: "ALTA",
				Note:      "saldo inicial de demostración",
				CreatedBy: entity.SystemActor,
				CreatedAt: now,
			})
		}
	}
}
