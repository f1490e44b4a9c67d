package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
	"github.com/jhoicas/Inventario-core/pkg/query"
)

// PurchaseOrderUseCase ciclo de vida de órdenes de compra: creación en
// DRAFT, edición solo en DRAFT, transiciones de la máquina de estados y la
// cascada de recepción sobre el libro de inventario.
type PurchaseOrderUseCase struct {
	txRunner     TxRunner
	orderRepo    repository.PurchaseOrderRepository
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	txRunner TxRunner,
	orderRepo repository.PurchaseOrderRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{
		txRunner:     txRunner,
		orderRepo:    orderRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Create crea una orden en DRAFT con su número PO-YYYYMM-NNN asignado. La
// creación siembra la primera entrada del historial.
func (uc *PurchaseOrderUseCase) Create(actor string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	items, err := uc.buildItems(in.Items)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrInvalidInput
	}

	order := entity.NewPurchaseOrder(in.SupplierID, items, time.Now(), actor)
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *PurchaseOrderUseCase) GetByID(id int64) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return orderResponse(order), nil
}

// List lista órdenes con filtro por estado y proveedor, búsqueda por número
// y orden de la más reciente a la más antigua.
func (uc *PurchaseOrderUseCase) List(q dto.PurchaseOrderListQuery) (*dto.ListResponse[dto.PurchaseOrderResponse], error) {
	if q.Status != "" && !entity.PurchaseOrderStatus(q.Status).IsValid() {
		return nil, domain.ErrInvalidInput
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}

	var filters []query.Predicate[entity.PurchaseOrder]
	if q.Status != "" {
		status := entity.PurchaseOrderStatus(q.Status)
		filters = append(filters, func(o entity.PurchaseOrder) bool { return o.Status == status })
	}
	if q.SupplierID != 0 {
		filters = append(filters, func(o entity.PurchaseOrder) bool { return o.SupplierID == q.SupplierID })
	}

	res, err := query.Apply(orders, query.Options[entity.PurchaseOrder]{
		Search: q.Search,
		SearchFields: []func(entity.PurchaseOrder) string{
			func(o entity.PurchaseOrder) string { return o.Number },
		},
		Filters: filters,
		Less: func(a, b entity.PurchaseOrder) bool {
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

	data := make([]dto.PurchaseOrderResponse, 0, len(res.Items))
	for i := range res.Items {
		data = append(data, *orderResponse(&res.Items[i]))
	}
	return &dto.ListResponse[dto.PurchaseOrderResponse]{Data: data, Total: res.Total, Page: res.Page, Limit: res.Limit}, nil
}

// Update edita proveedor o renglones de una orden, solo en DRAFT. Corre
// dentro de la sección crítica global para no pisar una transición
// concurrente (leer-modificar-escribir serializado).
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id int64, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	var out *dto.PurchaseOrderResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		order, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.PurchaseOrderStatusDraft {
			return domain.ErrInvalidTransition
		}
		if in.SupplierID != nil {
			supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
			if err != nil {
				return err
			}
			if supplier == nil {
				return domain.ErrInvalidInput
			}
			order.SupplierID = *in.SupplierID
		}
		if in.Items != nil {
			items, err := uc.buildItems(in.Items)
			if err != nil {
				return err
			}
			order.Items = items
		}
		order.UpdatedAt = time.Now()
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		out = orderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina una orden. Corre en la sección crítica global: un borrado
// que se intercalara con la cascada de recepción dejaría asientos huérfanos
// de una transición fallida. El consecutivo diario puede reabrirse (ver
// repositorio); el libro no se toca: los asientos de una orden recibida son
// inmutables.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		_ repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		return orderRepo.Delete(id)
	})
}

// Transition aplica una transición de estado. ORDERED -> RECEIVED dispara la
// cascada: un asiento PURCHASE_RECEIPT por renglón con referencia al número
// de la orden, compartiendo un BatchID. Todo corre en la sección crítica
// global y las escrituras van al final ya validadas, de modo que o quedan
// todos los asientos y el estado RECEIVED, o no queda nada; un segundo
// Transition concurrente sobre la misma orden falla con ErrInvalidTransition
// y no genera asientos.
func (uc *PurchaseOrderUseCase) Transition(ctx context.Context, id int64, target string, actor string) (*dto.PurchaseOrderResponse, error) {
	var out *dto.PurchaseOrderResponse
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.PurchaseOrderRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.ProductRepository,
	) error {
		order, err := orderRepo.GetByID(id)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		status := entity.PurchaseOrderStatus(target)
		if err := order.Transition(status, now, actor); err != nil {
			return err
		}

		if status == entity.PurchaseOrderStatusReceived {
			movements := receiptMovements(order, now, actor)
			if err := movementRepo.CreateBatch(movements); err != nil {
				return err
			}
		}
		// El estado se escribe después de los asientos: ningún lector ve
		// RECEIVED con la cascada incompleta.
		if err := orderRepo.Update(order); err != nil {
			return err
		}
		out = orderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// receiptMovements arma los asientos de recepción de una orden: cantidades
// positivas por construcción (validadas al crear/editar la orden).
func receiptMovements(order *entity.PurchaseOrder, at time.Time, actor string) []*entity.StockMovement {
	if actor == "" {
		actor = entity.SystemActor
	}
	batchID := uuid.New().String()
	movements := make([]*entity.StockMovement, 0, len(order.Items))
	for _, item := range order.Items {
		movements = append(movements, &entity.StockMovement{
			ProductID: item.ProductID,
			Type:      entity.MovementTypePurchaseReceipt,
			Quantity:  item.Quantity,
			Reference: order.Number,
			Note:      "recepción de orden de compra",
			BatchID:   batchID,
			CreatedBy: actor,
			CreatedAt: at,
		})
	}
	return movements
}

func (uc *PurchaseOrderUseCase) buildItems(in []dto.PurchaseOrderItemRequest) ([]entity.PurchaseOrderItem, error) {
	if len(in) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.PurchaseOrderItem, 0, len(in))
	for _, item := range in {
		if !item.Quantity.GreaterThan(decimal.Zero) || item.UnitCost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.PurchaseOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}
	return items, nil
}

func orderResponse(o *entity.PurchaseOrder) *dto.PurchaseOrderResponse {
	items := make([]dto.PurchaseOrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, dto.PurchaseOrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitCost:  item.UnitCost,
		})
	}
	history := make([]dto.StatusChangeResponse, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, dto.StatusChangeResponse{
			Status: string(h.Status),
			At:     h.At,
			Actor:  h.Actor,
		})
	}
	return &dto.PurchaseOrderResponse{
		ID:         o.ID,
		Number:     o.Number,
		SupplierID: o.SupplierID,
		Items:      items,
		Status:     string(o.Status),
		History:    history,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
