package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/domain"
	"github.com/hierrosur/costos-api/internal/domain/costeo"
	"github.com/hierrosur/costos-api/internal/domain/entity"
	"github.com/hierrosur/costos-api/internal/domain/repository"
)

// AnalisisUseCase orquesta los reportes de rentabilidad: carga los snapshots
// de catálogo, costos y remitos y delega el cálculo en el motor de costeo.
// La tasa de IVA vigente se inyecta acá; el motor la recibe como parámetro en
// cada llamada, así un análisis usa un único punto consistente en el tiempo
// aunque la configuración cambie entre consultas.
type AnalisisUseCase struct {
	remitoRepo   repository.RemitoRepository
	clienteRepo  repository.ClienteRepository
	productoRepo repository.ProductoRepository
	costoRepo    repository.CostoRepository
	tasaIVA      decimal.Decimal
}

// NewAnalisisUseCase construye el caso de uso con la tasa de IVA configurada.
func NewAnalisisUseCase(
	remitoRepo repository.RemitoRepository,
	clienteRepo repository.ClienteRepository,
	productoRepo repository.ProductoRepository,
	costoRepo repository.CostoRepository,
	tasaIVA decimal.Decimal,
) *AnalisisUseCase {
	return &AnalisisUseCase{
		remitoRepo:   remitoRepo,
		clienteRepo:  clienteRepo,
		productoRepo: productoRepo,
		costoRepo:    costoRepo,
		tasaIVA:      tasaIVA,
	}
}

// AnalizarRemito calcula la rentabilidad real de un remito.
func (uc *AnalisisUseCase) AnalizarRemito(remitoID string) (*dto.AnalisisRemitoDTO, error) {
	remito, err := uc.remitoRepo.GetByID(remitoID)
	if err != nil {
		return nil, err
	}
	if remito == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.remitoRepo.GetItems(remitoID)
	if err != nil {
		return nil, err
	}
	catalogo, costos, err := uc.snapshots()
	if err != nil {
		return nil, err
	}

	a := costeo.AnalizarRemito(*remito, items, catalogo, costos, uc.tasaIVA)
	return &dto.AnalisisRemitoDTO{
		RemitoID:          remito.ID,
		Numero:            remito.Numero,
		Total:             remito.Total.Round(2),
		CostoTotal:        a.CostoTotal.Round(2),
		GananciaReal:      a.GananciaReal.Round(2),
		IVAVenta:          a.IVAVenta.Round(2),
		IVACosto:          a.IVACosto.Round(2),
		CostosIncompletos: a.CostosIncompletos,
		ItemsSinCosto:     a.ItemsSinCosto,
	}, nil
}

// RentabilidadCliente agrega el historial completo de remitos del cliente.
func (uc *AnalisisUseCase) RentabilidadCliente(clienteID string) (*dto.RentabilidadClienteDTO, error) {
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
	catalogo, costos, err := uc.snapshots()
	if err != nil {
		return nil, err
	}

	conItems := make([]costeo.RemitoConItems, 0, len(remitos))
	for i := range remitos {
		items, err := uc.remitoRepo.GetItems(remitos[i].ID)
		if err != nil {
			return nil, err
		}
		conItems = append(conItems, costeo.RemitoConItems{Remito: remitos[i], Items: items})
	}

	r := costeo.AgregarCartera(conItems, catalogo, costos, uc.tasaIVA)
	return &dto.RentabilidadClienteDTO{
		ClienteID:         cliente.ID,
		Cliente:           cliente.Nombre,
		Remitos:           r.Remitos,
		VentasTotales:     r.VentasTotales.Round(2),
		CostoTotal:        r.CostoTotal.Round(2),
		GananciaTotal:     r.GananciaTotal.Round(2),
		IVACredito:        r.IVACredito.Round(2),
		IVADebito:         r.IVADebito.Round(2),
		IVASaldo:          r.IVASaldo.Round(2),
		CostosIncompletos: r.CostosIncompletos,
	}, nil
}

// snapshots carga la foto de catálogo y costos sobre la que corre un análisis.
func (uc *AnalisisUseCase) snapshots() ([]entity.Producto, map[string]entity.CostoProduccion, error) {
	catalogo, err := uc.productoRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	costos, err := uc.costoRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	return catalogo, costeo.IndexarCostos(costos), nil
}
