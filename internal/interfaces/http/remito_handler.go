package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/application/usecase"
	"github.com/hierrosur/costos-api/internal/domain"
)

// RemitoHandler maneja las peticiones HTTP de remitos (protegido).
type RemitoHandler struct {
	uc *usecase.RemitoUseCase
}

// NewRemitoHandler construye el handler.
func NewRemitoHandler(uc *usecase.RemitoUseCase) *RemitoHandler {
	return &RemitoHandler{uc: uc}
}

// Create godoc
// @Summary      Emitir remito
// @Tags         remitos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRemitoRequest  true  "cliente_id e items"
// @Success      201   {object}  dto.RemitoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/remitos [post]
func (h *RemitoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRemitoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente_id y al menos un item válido son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener remito con sus líneas
// @Tags         remitos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.RemitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id} [get]
func (h *RemitoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remito no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetPDF godoc
// @Summary      Descargar el remito imprimible (PDF)
// @Tags         remitos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id}/pdf [get]
func (h *RemitoHandler) GetPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.GetPDF(c.Context(), id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remito no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="remito-%s.pdf"`, id))
	return c.Send(pdfBytes)
}

// ListByCliente godoc
// @Summary      Historial de remitos de un cliente
// @Tags         remitos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {array}  dto.RemitoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/remitos [get]
func (h *RemitoHandler) ListByCliente(c *fiber.Ctx) error {
	clienteID := c.Params("id")
	out, err := h.uc.ListByCliente(clienteID)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
