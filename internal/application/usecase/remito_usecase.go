package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/domain"
	"github.com/hierrosur/costos-api/internal/domain/entity"
	"github.com/hierrosur/costos-api/internal/domain/repository"
)

// RemitoPDFGenerator puerto de generación del remito imprimible.
type RemitoPDFGenerator interface {
	GenerateRemitoPDF(ctx context.Context, remito *entity.Remito, cliente *entity.Cliente, items []entity.RemitoItem) ([]byte, error)
}

// RemitoUseCase emite remitos y consulta el historial por cliente.
type RemitoUseCase struct {
	remitoRepo  repository.RemitoRepository
	clienteRepo repository.ClienteRepository
	pdfGen      RemitoPDFGenerator
}

// NewRemitoUseCase construye el caso de uso.
func NewRemitoUseCase(remitoRepo repository.RemitoRepository, clienteRepo repository.ClienteRepository, pdfGen RemitoPDFGenerator) *RemitoUseCase {
	return &RemitoUseCase{remitoRepo: remitoRepo, clienteRepo: clienteRepo, pdfGen: pdfGen}
}

// Create emite un remito: valida las líneas, congela importes y total
// (cantidad × precio unitario, nunca se recalculan después) y reserva el
// número correlativo.
func (uc *RemitoUseCase) Create(in dto.CreateRemitoRequest) (*dto.RemitoResponse, error) {
	if in.ClienteID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	for _, it := range in.Items {
		if it.Cantidad <= 0 || it.Medida == "" || it.Producto == "" || it.PrecioUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	numero, err := uc.remitoRepo.NextNumero()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	remito := &entity.Remito{
		ID:        uuid.New().String(),
		Numero:    numero,
		ClienteID: in.ClienteID,
		Fecha:     now,
		CreatedAt: now,
	}
	items := make([]entity.RemitoItem, 0, len(in.Items))
	for _, it := range in.Items {
		importe := it.PrecioUnitario.Mul(decimal.NewFromInt(it.Cantidad))
		items = append(items, entity.RemitoItem{
			ID:             uuid.New().String(),
			RemitoID:       remito.ID,
			Cantidad:       it.Cantidad,
			Medida:         it.Medida,
			Producto:       it.Producto,
			PrecioUnitario: it.PrecioUnitario,
			Importe:        importe,
		})
		remito.Total = remito.Total.Add(importe)
	}

	if err := uc.remitoRepo.Create(remito, items); err != nil {
		return nil, err
	}
	return toRemitoResponse(remito, cliente.Nombre, items), nil
}

// GetByID devuelve un remito con sus líneas.
func (uc *RemitoUseCase) GetByID(id string) (*dto.RemitoResponse, error) {
	remito, err := uc.remitoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if remito == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.remitoRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	nombre := ""
	if cliente, _ := uc.clienteRepo.GetByID(remito.ClienteID); cliente != nil {
		nombre = cliente.Nombre
	}
	return toRemitoResponse(remito, nombre, items), nil
}

// GetPDF genera el remito imprimible.
func (uc *RemitoUseCase) GetPDF(ctx context.Context, id string) ([]byte, error) {
	remito, err := uc.remitoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if remito == nil {
		return nil, domain.ErrNotFound
	}
	cliente, err := uc.clienteRepo.GetByID(remito.ClienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.remitoRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateRemitoPDF(ctx, remito, cliente, items)
}

// ListByCliente devuelve el historial de remitos del cliente (sin líneas).
func (uc *RemitoUseCase) ListByCliente(clienteID string) ([]dto.RemitoResponse, error) {
	cliente, err := uc.clienteRepo.GetByID(clienteID)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}
	remitos, err := uc.remitoRepo.ListByCliente(clienteID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RemitoResponse, 0, len(remitos))
	for i := range remitos {
		out = append(out, *toRemitoResponse(&remitos[i], cliente.Nombre, nil))
	}
	return out, nil
}

func toRemitoResponse(r *entity.Remito, cliente string, items []entity.RemitoItem) *dto.RemitoResponse {
	resp := &dto.RemitoResponse{
		ID:        r.ID,
		Numero:    r.Numero,
		ClienteID: r.ClienteID,
		Cliente:   cliente,
		Fecha:     r.Fecha.Format("2006-01-02"),
		Total:     r.Total,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.RemitoItemResponse{
			ID:             it.ID,
			Cantidad:       it.Cantidad,
			Medida:         it.Medida,
			Producto:       it.Producto,
			PrecioUnitario: it.PrecioUnitario,
			Importe:        it.Importe,
		})
	}
	return resp
}
