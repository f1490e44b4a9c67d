package usecase

import (
	"time"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
	"github.com/jhoicas/Inventario-core/pkg/query"
)

// Política de integridad de los catálogos: chequeo blando. Borrar una
// categoría o unidad referenciada por productos procede igual, y la
// respuesta marca IsOrphan=true para que el caller avise que quedaron
// referencias huérfanas. Una política estricta devolvería
// domain.ErrReferentialConflict en vez de borrar; se eligió la blanda por
// fidelidad al sistema original y se aplica igual a ambos catálogos.

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo        repository.CategoryRepository
	productRepo repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, productRepo repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(in dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	category := &entity.Category{Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.LookupResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return categoryResponse(category), nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		return nil, err
	}
	return categoryResponse(category), nil
}

// Delete borra la categoría y reporta si quedaron productos huérfanos.
func (uc *CategoryUseCase) Delete(id int64) (*dto.LookupDeleteResponse, error) {
	refs, err := uc.productRepo.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.LookupDeleteResponse{Deleted: true, IsOrphan: refs > 0}, nil
}

// List lista categorías con búsqueda por nombre.
func (uc *CategoryUseCase) List(q dto.LookupListQuery) (*dto.ListResponse[dto.LookupResponse], error) {
	categories, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	res, err := query.Apply(categories, query.Options[entity.Category]{
		Search:       q.Search,
		SearchFields: []func(entity.Category) string{func(c entity.Category) string { return c.Name }},
		Less:         func(a, b entity.Category) bool { return a.ID < b.ID },
		Page:         q.Page,
		Limit:        q.Limit,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.LookupResponse, 0, len(res.Items))
	for i := range res.Items {
		data = append(data, *categoryResponse(&res.Items[i]))
	}
	return &dto.ListResponse[dto.LookupResponse]{Data: data, Total: res.Total, Page: res.Page, Limit: res.Limit}, nil
}

func categoryResponse(c *entity.Category) *dto.LookupResponse {
	return &dto.LookupResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// UnitUseCase casos de uso CRUD para unidades de medida. Misma política de
// integridad blanda que CategoryUseCase.
type UnitUseCase struct {
	repo        repository.UnitRepository
	productRepo repository.ProductRepository
}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase(repo repository.UnitRepository, productRepo repository.ProductRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una unidad.
func (uc *UnitUseCase) Create(in dto.CreateLookupRequest) (*dto.LookupResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	unit := &entity.Unit{Name: in.Name, CreatedAt: now, UpdatedAt: now}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return unitResponse(unit), nil
}

// GetByID obtiene una unidad por ID.
func (uc *UnitUseCase) GetByID(id int64) (*dto.LookupResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return unitResponse(unit), nil
}

// Update renombra una unidad.
func (uc *UnitUseCase) Update(id int64, in dto.UpdateLookupRequest) (*dto.LookupResponse, error) {
	unit, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		unit.Name = *in.Name
	}
	unit.UpdatedAt = time.Now()
	if err := uc.repo.Update(unit); err != nil {
		return nil, err
	}
	return unitResponse(unit), nil
}

// Delete borra la unidad y reporta si quedaron productos huérfanos.
func (uc *UnitUseCase) Delete(id int64) (*dto.LookupDeleteResponse, error) {
	refs, err := uc.productRepo.CountByUnit(id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(id); err != nil {
		return nil, err
	}
	return &dto.LookupDeleteResponse{Deleted: true, IsOrphan: refs > 0}, nil
}

// List lista unidades con búsqueda por nombre.
func (uc *UnitUseCase) List(q dto.LookupListQuery) (*dto.ListResponse[dto.LookupResponse], error) {
	units, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	res, err := query.Apply(units, query.Options[entity.Unit]{
		Search:       q.Search,
		SearchFields: []func(entity.Unit) string{func(u entity.Unit) string { return u.Name }},
		Less:         func(a, b entity.Unit) bool { return a.ID < b.ID },
		Page:         q.Page,
		Limit:        q.Limit,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.LookupResponse, 0, len(res.Items))
	for i := range res.Items {
		data = append(data, *unitResponse(&res.Items[i]))
	}
	return &dto.ListResponse[dto.LookupResponse]{Data: data, Total: res.Total, Page: res.Page, Limit: res.Limit}, nil
}

func unitResponse(u *entity.Unit) *dto.LookupResponse {
	return &dto.LookupResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}
