package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/domain"
	"github.com/hierrosur/costos-api/internal/domain/entity"
	"github.com/hierrosur/costos-api/internal/domain/repository"
)

// ClienteUseCase administra la cartera de clientes.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Create da de alta un cliente.
func (uc *ClienteUseCase) Create(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		CUIT:      in.CUIT,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreatedAt: time.Now(),
	}
	if err := uc.clienteRepo.Create(c); err != nil {
		return nil, err
	}
	return toClienteResponse(c), nil
}

// GetByID devuelve un cliente.
func (uc *ClienteUseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toClienteResponse(c), nil
}

// List lista clientes paginados.
func (uc *ClienteUseCase) List(page dto.PageRequest) ([]dto.ClienteResponse, error) {
	page.DefaultPage()
	clientes, err := uc.clienteRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		out = append(out, *toClienteResponse(&clientes[i]))
	}
	return out, nil
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		CUIT:      c.CUIT,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}
