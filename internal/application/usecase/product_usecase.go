package usecase

import (
	"time"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
	"github.com/jhoicas/Inventario-core/pkg/query"
)

// ProductUseCase casos de uso CRUD para productos. El stock nunca se edita
// aquí: es la suma de movimientos del libro y se calcula al responder.
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
	unitRepo     repository.UnitRepository
	movementRepo repository.StockMovementRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	unitRepo repository.UnitRepository,
	movementRepo repository.StockMovementRepository,
) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		categoryRepo: categoryRepo,
		unitRepo:     unitRepo,
		movementRepo: movementRepo,
	}
}

// Create crea un producto. Si InitialStock no es cero, el saldo entra como
// asiento de ajuste con referencia ALTA; así el invariante
// stock == suma de movimientos vale desde la creación.
func (uc *ProductUseCase) Create(actor string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkLookups(in.CategoryID, in.UnitID); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Code:       in.Code,
		Name:       in.Name,
		CategoryID: in.CategoryID,
		UnitID:     in.UnitID,
		CostPrice:  in.CostPrice,
		SalePrice:  in.SalePrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}

	if !in.InitialStock.IsZero() {
		if actor == "" {
			actor = entity.SystemActor
		}
		movement := &entity.StockMovement{
			ProductID: product.ID,
			Type:      entity.MovementTypeAdjustment,
			Quantity:  in.InitialStock,
			Reference: "ALTA",
			Note:      "saldo inicial",
			CreatedBy: actor,
			CreatedAt: now,
		}
		if err := uc.movementRepo.Create(movement); err != nil {
			return nil, err
		}
	}
	return uc.toResponse(product)
}

// GetByID obtiene un producto por ID con su stock derivado.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product)
}

// Update actualiza un producto. No hay forma de tocar el stock desde aquí.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil {
		if *in.Code == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		category, err := uc.categoryRepo.GetByID(*in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.UnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.ErrInvalidInput
		}
		product.UnitID = *in.UnitID
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// Delete elimina un producto. Sus asientos en el libro quedan: el libro es
// append-only y la referencia al producto es débil.
func (uc *ProductUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// List lista productos con búsqueda libre (código y nombre), filtros por
// categoría/unidad y paginación.
func (uc *ProductUseCase) List(q dto.ProductListQuery) (*dto.ListResponse[dto.ProductResponse], error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	var filters []query.Predicate[entity.Product]
	if q.CategoryID != 0 {
		filters = append(filters, func(p entity.Product) bool { return p.CategoryID == q.CategoryID })
	}
	if q.UnitID != 0 {
		filters = append(filters, func(p entity.Product) bool { return p.UnitID == q.UnitID })
	}

	res, err := query.Apply(products, query.Options[entity.Product]{
		Search: q.Search,
		SearchFields: []func(entity.Product) string{
			func(p entity.Product) string { return p.Code },
			func(p entity.Product) string { return p.Name },
		},
		Filters: filters,
		Less:    func(a, b entity.Product) bool { return a.ID < b.ID },
		Page:    q.Page,
		Limit:   q.Limit,
	})
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProductResponse, 0, len(res.Items))
	for i := range res.Items {
		out, err := uc.toResponse(&res.Items[i])
		if err != nil {
			return nil, err
		}
		data = append(data, *out)
	}
	return &dto.ListResponse[dto.ProductResponse]{
		Data:  data,
		Total: res.Total,
		Page:  res.Page,
		Limit: res.Limit,
	}, nil
}

func (uc *ProductUseCase) checkLookups(categoryID, unitID int64) error {
	category, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrInvalidInput
	}
	unit, err := uc.unitRepo.GetByID(unitID)
	if err != nil {
		return err
	}
	if unit == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	stock, err := uc.movementRepo.BalanceByProduct(p.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		CategoryID: p.CategoryID,
		UnitID:     p.UnitID,
		CostPrice:  p.CostPrice,
		SalePrice:  p.SalePrice,
		Stock:      stock,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}, nil
}
