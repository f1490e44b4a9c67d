package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
	"github.com/jhoicas/Inventario-core/pkg/query"
)

// LedgerUseCase lectura y registro del libro de inventario. El libro es la
// fuente de verdad del stock: el balance de un producto es la suma con signo
// de sus asientos, calculada bajo demanda.
type LedgerUseCase struct {
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *LedgerUseCase {
	return &LedgerUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// Register registra un asiento manual (venta, ajuste o recepción suelta).
// Valida tipo, signo y existencia del producto; el asiento queda inmutable.
func (uc *LedgerUseCase) Register(actor string, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidMovementType(in.Type) || !entity.ValidQuantityForType(in.Type, in.Quantity) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if actor == "" {
		actor = entity.SystemActor
	}
	movement := &entity.StockMovement{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reference: in.Reference,
		Note:      in.Note,
		BatchID:   uuid.New().String(),
		CreatedBy: actor,
		CreatedAt: time.Now(),
	}
	if err := uc.movementRepo.Create(movement); err != nil {
		return nil, err
	}
	return movementResponse(movement, product.Name), nil
}

// GetByID obtiene un asiento por ID.
func (uc *LedgerUseCase) GetByID(id int64) (*dto.MovementResponse, error) {
	movement, err := uc.movementRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	names, err := uc.productNames()
	if err != nil {
		return nil, err
	}
	return movementResponse(movement, names[movement.ProductID]), nil
}

// List historial de movimientos: rango de fechas, producto y texto libre
// sobre nombre de producto y referencia; orden del más reciente al más
// antiguo (fecha descendente, empates por orden de inserción descendente).
func (uc *LedgerUseCase) List(q dto.MovementListQuery) (*dto.ListResponse[dto.MovementResponse], error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	names, err := uc.productNames()
	if err != nil {
		return nil, err
	}

	var filters []query.Predicate[entity.StockMovement]
	if q.ProductID != 0 {
		filters = append(filters, func(m entity.StockMovement) bool { return m.ProductID == q.ProductID })
	}
	if q.From != nil {
		from := *q.From
		filters = append(filters, func(m entity.StockMovement) bool { return !m.CreatedAt.Before(from) })
	}
	if q.To != nil {
		to := *q.To
		filters = append(filters, func(m entity.StockMovement) bool { return !m.CreatedAt.After(to) })
	}

	res, err := query.Apply(movements, query.Options[entity.StockMovement]{
		Search: q.Search,
		SearchFields: []func(entity.StockMovement) string{
			func(m entity.StockMovement) string { return names[m.ProductID] },
			func(m entity.StockMovement) string { return m.Reference },
		},
		Filters: filters,
		Less: func(a, b entity.StockMovement) bool {
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
			return a.ID > b.ID
		},
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.MovementResponse, 0, len(res.Items))
	for i := range res.Items {
		m := &res.Items[i]
		data = append(data, *movementResponse(m, names[m.ProductID]))
	}
	return &dto.ListResponse[dto.MovementResponse]{Data: data, Total: res.Total, Page: res.Page, Limit: res.Limit}, nil
}

// Balance balance actual de un producto.
func (uc *LedgerUseCase) Balance(productID int64) (*dto.BalanceResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	balance, err := uc.movementRepo.BalanceByProduct(productID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{ProductID: productID, Balance: balance}, nil
}

// productNames mapa ID -> nombre para resolver la referencia débil del
// asiento; un producto borrado sale con nombre vacío.
func (uc *LedgerUseCase) productNames() (map[int64]string, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func movementResponse(m *entity.StockMovement, productName string) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: productName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reference:   m.Reference,
		Note:        m.Note,
		BatchID:     m.BatchID,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
