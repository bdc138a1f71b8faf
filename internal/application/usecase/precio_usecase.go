package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/hierrosur/costos-api/internal/application/dto"
	"github.com/hierrosur/costos-api/internal/domain"
	"github.com/hierrosur/costos-api/internal/domain/costeo"
	"github.com/hierrosur/costos-api/internal/domain/repository"
	"github.com/hierrosur/costos-api/pkg/config"
)

// PrecioUseCase sugiere precios de venta y estima material de estribos.
type PrecioUseCase struct {
	costoRepo repository.CostoRepository
	cfg       config.CosteoConfig
}

// NewPrecioUseCase construye el caso de uso con los parámetros configurados.
func NewPrecioUseCase(costoRepo repository.CostoRepository, cfg config.CosteoConfig) *PrecioUseCase {
	return &PrecioUseCase{costoRepo: costoRepo, cfg: cfg}
}

// Sugerir calcula el precio de venta sugerido. Con ProductoID toma costo y
// margen del registro cargado; si no, usa los valores del pedido. Margen y
// costo negativos se rechazan acá, antes de entrar al motor.
func (uc *PrecioUseCase) Sugerir(in dto.SugerenciaPrecioRequest) (*dto.SugerenciaPrecioDTO, error) {
	costo := in.Costo
	margen := in.MargenGanancia
	if in.ProductoID != "" {
		registro, err := uc.costoRepo.GetByProductoID(in.ProductoID)
		if err != nil {
			return nil, err
		}
		if registro == nil {
			return nil, domain.ErrNotFound
		}
		costo = registro.Costo
		margen = registro.MargenGanancia
	}
	if costo.IsNegative() || margen.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	s := costeo.SugerirPrecio(costo, margen, uc.cfg.IVAPorcentaje)
	return &dto.SugerenciaPrecioDTO{
		CostoNeto:      s.CostoNeto.Round(2),
		CostoConMargen: s.CostoConMargen.Round(2),
		PrecioFinal:    s.PrecioFinal.Round(2),
		TasaIVA:        uc.cfg.IVAPorcentaje,
	}, nil
}

// EstimarEstribo estima metros y costo de material de un estribo. Peso lineal
// y precio del alambre vacíos caen a los configurados. Una medida
// ininterpretable no es error: devuelve cifras en cero con MedidaValida en
// falso, para que la carga masiva siga andando.
func (uc *PrecioUseCase) EstimarEstribo(in dto.EstimacionEstriboRequest) (*dto.EstimacionEstriboDTO, error) {
	if in.Medida == "" {
		return nil, domain.ErrInvalidInput
	}
	kgPorMetro := in.KgPorMetro
	if kgPorMetro.IsZero() {
		kgPorMetro = uc.cfg.EstriboKgPorMetro
	}
	precioPorKg := in.PrecioPorKg
	if precioPorKg.IsZero() {
		precioPorKg = uc.cfg.EstriboPrecioPorKg
	}
	if kgPorMetro.IsNegative() || precioPorKg.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	e := costeo.EstimadorEstribo{
		DoblezCm:    uc.cfg.DoblezCm,
		KgPorMetro:  kgPorMetro,
		PrecioPorKg: precioPorKg,
	}
	_, valida := costeo.ParseDimensiones(in.Medida)
	metros := decimal.Zero
	costoMaterial := decimal.Zero
	if valida {
		metros = e.MetrosPorUnidad(in.Medida, in.Forma)
		costoMaterial = e.CostoUnitario(in.Medida, in.Forma)
	}
	return &dto.EstimacionEstriboDTO{
		Medida:        in.Medida,
		Forma:         in.Forma,
		MetrosUnidad:  metros.Round(4),
		CostoMaterial: costoMaterial.Round(2),
		MedidaValida:  valida,
	}, nil
}
