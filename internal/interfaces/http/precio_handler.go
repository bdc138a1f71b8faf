package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/application/usecase"
	"github.com/hierrosur/costos-api/internal/domain"
)

// PrecioHandler maneja sugerencia de precios y estimación de estribos (protegido).
type PrecioHandler struct {
	uc *usecase.PrecioUseCase
}

// NewPrecioHandler construye el handler.
func NewPrecioHandler(uc *usecase.PrecioUseCase) *PrecioHandler {
	return &PrecioHandler{uc: uc}
}

// Sugerir godoc
// @Summary      Sugerir precio de venta (margen sobre costo neto + IVA)
// @Tags         precios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SugerenciaPrecioRequest  true  "producto_id, o bien costo y margen_ganancia"
// @Success      200   {object}  dto.SugerenciaPrecioDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/precios/sugerir [post]
func (h *PrecioHandler) Sugerir(c *fiber.Ctx) error {
	var in dto.SugerenciaPrecioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Sugerir(in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no tiene costo cargado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "costo y margen no pueden ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// EstimarEstribo godoc
// @Summary      Estimar metros de alambre y costo de material de un estribo
// @Tags         precios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EstimacionEstriboRequest  true  "medida (ej. 10x20), forma opcional"
// @Success      200   {object}  dto.EstimacionEstriboDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/estribos/estimar [post]
func (h *PrecioHandler) EstimarEstribo(c *fiber.Ctx) error {
	var in dto.EstimacionEstriboRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.EstimarEstribo(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "medida es requerida; kg/m y $/kg no pueden ser negativos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
