package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Tienda-bot/internal/domain"
	"github.com/jhoicas/Tienda-bot/internal/domain/entity"
	"github.com/jhoicas/Tienda-bot/internal/domain/repository"
)

// CreateProductInput campos recogidos por el asistente de catálogo.
// El precio llega ya parseado: la validación de formato es del asistente.
type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Sizes       []string
	PhotoRef    string
}

// CatalogUseCase casos de uso del catálogo: alta y consulta de productos.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// AddProduct persiste un producto nuevo y devuelve el id asignado.
// Rechaza precios negativos con ErrInvalidInput.
func (uc *CatalogUseCase) AddProduct(in CreateProductInput) (int64, error) {
	if in.Price.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	photoRef := in.PhotoRef
	if photoRef == "" {
		photoRef = entity.PhotoNone
	}
	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Sizes:       in.Sizes,
		PhotoRef:    photoRef,
		CreatedAt:   time.Now(),
	}
	return uc.products.Create(product)
}

// List devuelve el catálogo completo en orden de inserción.
func (uc *CatalogUseCase) List() ([]entity.Product, error) {
	return uc.products.List()
}

// GetByID obtiene un producto; (nil, nil) si no existe.
func (uc *CatalogUseCase) GetByID(id int64) (*entity.Product, error) {
	return uc.products.GetByID(id)
}
