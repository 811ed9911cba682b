package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invorya/stock-ledger/internal/application/dto"
	"github.com/invorya/stock-ledger/internal/domain"
	"github.com/invorya/stock-ledger/internal/domain/entity"
	"github.com/invorya/stock-ledger/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// Las cantidades en bodega no se tocan aquí: se manejan vía el ledger.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto con ID fresco y ambos timestamps iguales.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductFields(in.SKU, in.Name, in.CostPrice, in.SellingPrice, in.MinStockThreshold); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		SKU:               strings.TrimSpace(in.SKU),
		Name:              in.Name,
		Description:       in.Description,
		Category:          in.Category,
		Supplier:          in.Supplier,
		CostPrice:         in.CostPrice,
		SellingPrice:      in.SellingPrice,
		MinStockThreshold: in.MinStockThreshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update mezcla los campos presentes sobre el registro existente y refresca
// UpdatedAt. El ID es inmutable.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		product.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.MinStockThreshold != nil {
		product.MinStockThreshold = *in.MinStockThreshold
	}
	if err := validateProductFields(product.SKU, product.Name, product.CostPrice, product.SellingPrice, product.MinStockThreshold); err != nil {
		return nil, err
	}
	// Cambiar el SKU re-chequea unicidad: otro producto con el mismo SKU es duplicado.
	if in.SKU != nil {
		existing, err := uc.repo.GetBySKU(product.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID. No hay chequeo en cascada contra stock:
// una fila de stock huérfana se reporta después como error de integridad en
// las consultas con detalle.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateProductFields(sku, name string, costPrice, sellingPrice decimal.Decimal, threshold int64) error {
	if strings.TrimSpace(sku) == "" || strings.TrimSpace(name) == "" {
		return domain.ErrValidation
	}
	if costPrice.IsNegative() || sellingPrice.IsNegative() {
		return domain.ErrValidation
	}
	if threshold < 0 {
		return domain.ErrValidation
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		Supplier:          p.Supplier,
		CostPrice:         p.CostPrice,
		SellingPrice:      p.SellingPrice,
		MinStockThreshold: p.MinStockThreshold,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
