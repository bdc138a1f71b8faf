package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/domain"
	"github.com/hierrosur/costos-api/internal/domain/entity"
	"github.com/hierrosur/costos-api/internal/domain/repository"
)

// ProductoUseCase administra el catálogo y los costos de producción.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
	costoRepo    repository.CostoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository, costoRepo repository.CostoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo, costoRepo: costoRepo}
}

// Create da de alta una entrada del catálogo.
func (uc *ProductoUseCase) Create(in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Medida == "" || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Producto{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Medida:    in.Medida,
		Diametro:  in.Diametro,
		Forma:     in.Forma,
		Precio:    in.Precio,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productoRepo.Create(p); err != nil {
		return nil, err
	}
	return toProductoResponse(p, nil), nil
}

// Update modifica una entrada existente.
func (uc *ProductoUseCase) Update(id string, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre == "" || in.Medida == "" || in.Precio.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p.Nombre = in.Nombre
	p.Medida = in.Medida
	p.Diametro = in.Diametro
	p.Forma = in.Forma
	p.Precio = in.Precio
	p.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(p); err != nil {
		return nil, err
	}
	costo, _ := uc.costoRepo.GetByProductoID(id)
	return toProductoResponse(p, costo), nil
}

// Delete elimina la entrada y su costo asociado, si existe.
func (uc *ProductoUseCase) Delete(id string) error {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	_ = uc.costoRepo.Delete(id)
	return uc.productoRepo.Delete(id)
}

// GetByID devuelve la entrada con su costo cargado, si lo tiene.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	costo, _ := uc.costoRepo.GetByProductoID(id)
	return toProductoResponse(p, costo), nil
}

// List lista el catálogo paginado, con los costos cargados.
func (uc *ProductoUseCase) List(page dto.PageRequest) ([]dto.ProductoResponse, error) {
	page.DefaultPage()
	productos, err := uc.productoRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	costos, err := uc.costoRepo.ListAll()
	if err != nil {
		return nil, err
	}
	porProducto := make(map[string]*entity.CostoProduccion, len(costos))
	for i := range costos {
		porProducto[costos[i].ProductoID] = &costos[i]
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, *toProductoResponse(&productos[i], porProducto[productos[i].ID]))
	}
	return out, nil
}

// SetCosto carga o reemplaza el costo de producción de un producto.
// Margen o costo negativos se rechazan acá: el motor de costeo no los valida.
func (uc *ProductoUseCase) SetCosto(productoID string, in dto.CostoRequest) error {
	if in.Costo.IsNegative() || in.MargenGanancia.IsNegative() {
		return domain.ErrInvalidInput
	}
	p, err := uc.productoRepo.GetByID(productoID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.costoRepo.Upsert(&entity.CostoProduccion{
		ProductoID:     productoID,
		Costo:          in.Costo,
		MargenGanancia: in.MargenGanancia,
		UpdatedAt:      time.Now(),
	})
}

func toProductoResponse(p *entity.Producto, c *entity.CostoProduccion) *dto.ProductoResponse {
	resp := &dto.ProductoResponse{
		ID:       p.ID,
		Nombre:   p.Nombre,
		Medida:   p.Medida,
		Diametro: p.Diametro,
		Forma:    p.Forma,
		Precio:   p.Precio,
	}
	if c != nil {
		resp.Costo = &dto.CostoResponse{Costo: c.Costo, MargenGanancia: c.MargenGanancia}
	}
	return resp
}
