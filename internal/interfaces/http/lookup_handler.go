package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-core/internal/application/dto"
	"github.com/jhoicas/Inventario-core/internal/application/usecase"
)

// lookupService lo que un catálogo (categorías, unidades) expone al handler.
// Ambos casos de uso cumplen la misma forma, así que un solo handler sirve a
// los dos grupos de rutas.
type lookupService interface {
	Create(in dto.CreateLookupRequest) (*dto.LookupResponse, error)
	GetByID(id int64) (*dto.LookupResponse, error)
	Update(id int64, in dto.UpdateLookupRequest) (*dto.LookupResponse, error)
	Delete(id int64) (*dto.LookupDeleteResponse, error)
	List(q dto.LookupListQuery) (*dto.ListResponse[dto.LookupResponse], error)
}

var _ lookupService = (*usecase.CategoryUseCase)(nil)
var _ lookupService = (*usecase.UnitUseCase)(nil)

// LookupHandler maneja las peticiones HTTP de un catálogo.
type LookupHandler struct {
	svc lookupService
}

// NewLookupHandler construye el handler sobre un catálogo concreto.
func NewLookupHandler(svc lookupService) *LookupHandler {
	return &LookupHandler{svc: svc}
}

// Create godoc
// @Summary      Crear entrada de catálogo
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLookupRequest  true  "Nombre"
// @Success      201   {object}  dto.LookupResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *LookupHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener entrada de catálogo por ID
// @Tags         lookups
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.LookupResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [get]
func (h *LookupHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.svc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar entrada de catálogo
// @Tags         lookups
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.UpdateLookupRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.LookupResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *LookupHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateLookupRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.svc.Update(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar entrada de catálogo
// @Description  El borrado procede aunque existan productos que la referencien;
// @Description  la respuesta marca is_orphan=true en ese caso.
// @Tags         lookups
// @Produce      json
// @Param        id  path  int  true  "ID"
// @Success      200  {object}  dto.LookupDeleteResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *LookupHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.svc.Delete(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar entradas de catálogo
// @Tags         lookups
// @Produce      json
// @Param        search  query  string  false  "Búsqueda por nombre"
// @Param        page    query  int     false  "Página"  default(1)
// @Param        limit   query  int     false  "Tamaño de página"  default(20)
// @Success      200  {object}  dto.ListResponse[dto.LookupResponse]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/categories [get]
func (h *LookupHandler) List(c *fiber.Ctx) error {
	page, limit := pagination(c)
	out, err := h.svc.List(dto.LookupListQuery{
		Search: c.Query("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
