package usecase

import (
	"time"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/domain"
	"github.com/jhoicas/Inventario-core/internal/domain/entity"
	"github.com/jhoicas/Inventario-core/internal/domain/repository"
	"github.com/jhoicas/Inventario-core/pkg/query"
)

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create crea un proveedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *SupplierUseCase) GetByID(id int64) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	return supplierResponse(supplier), nil
}

// Update actualiza un proveedor.
func (uc *SupplierUseCase) Update(id int64, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		supplier.Name = *in.Name
	}
	if in.Contact != nil {
		supplier.Contact = *in.Contact
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return supplierResponse(supplier), nil
}

// Delete elimina un proveedor. Las órdenes existentes conservan su
// SupplierID como referencia débil.
func (uc *SupplierUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// List lista proveedores con búsqueda por nombre, contacto y correo.
func (uc *SupplierUseCase) List(q dto.SupplierListQuery) (*dto.ListResponse[dto.SupplierResponse], error) {
	suppliers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	res, err := query.Apply(suppliers, query.Options[entity.Supplier]{
		Search: q.Search,
		SearchFields: []func(entity.Supplier) string{
			func(s entity.Supplier) string { return s.Name },
			func(s entity.Supplier) string { return s.Contact },
			func(s entity.Supplier) string { return s.Email },
		},
		Less:  func(a, b entity.Supplier) bool { return a.ID < b.ID },
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		return nil, err
	}
	data := make([]dto.SupplierResponse, 0, len(res.Items))
	for i := range res.Items {
		data = append(data, *supplierResponse(&res.Items[i]))
	}
	return &dto.ListResponse[dto.SupplierResponse]{Data: data, Total: res.Total, Page: res.Page, Limit: res.Limit}, nil
}

func supplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:        s.ID,
		Name:      s.Name,
		Contact:   s.Contact,
		Phone:     s.Phone,
		Email:     s.Email,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
