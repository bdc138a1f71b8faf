package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/application/usecase"
	"github.com/hierrosur/costos-api/internal/domain"
)

// AnalisisHandler maneja los reportes de rentabilidad (protegido).
type AnalisisHandler struct {
	uc *usecase.AnalisisUseCase
}

// NewAnalisisHandler construye el handler.
func NewAnalisisHandler(uc *usecase.AnalisisUseCase) *AnalisisHandler {
	return &AnalisisHandler{uc: uc}
}

// AnalizarRemito godoc
// @Summary      Rentabilidad real de un remito
// @Tags         analisis
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del remito"
// @Success      200  {object}  dto.AnalisisRemitoDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remitos/{id}/analisis [get]
func (h *AnalisisHandler) AnalizarRemito(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.AnalizarRemito(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "remito no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RentabilidadCliente godoc
// @Summary      Rentabilidad acumulada de la cartera de un cliente
// @Tags         analisis
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del cliente"
// @Success      200  {object}  dto.RentabilidadClienteDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/rentabilidad [get]
func (h *AnalisisHandler) RentabilidadCliente(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.RentabilidadCliente(id)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
