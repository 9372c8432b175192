package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/open-sedori/sedori/utils"
)

// ProductService provides business logic for catalog operations.
type ProductService struct {
	db *gorm.DB
}

// NewProductService creates a new ProductService instance
func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Create stores a new product for the given seller.
func (s *ProductService) Create(ctx context.Context, sellerID uuid.UUID, createReq *CreateProductDTO) (*Product, error) {
	if createReq == nil {
		return nil, fmt.Errorf("create request cannot be nil")
	}
	if createReq.Name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}

	currency := createReq.Currency
	if currency == "" {
		currency = "JPY"
	}

	product := &Product{
		SellerID:    sellerID,
		Name:        createReq.Name,
		Description: createReq.Description,
		Category:    createReq.Category,
		Metadata:    createReq.Metadata,
		RetailPrice: createReq.RetailPrice,
		Currency:    currency,
		Active:      true,
	}

	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a single product by its ID.
func (s *ProductService) GetByID(ctx context.Context, productID uuid.UUID) (*Product, error) {
	var product Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s not found: %w", productID, err)
		}
		return nil, fmt.Errorf("failed to query product: %w", err)
	}
	return &product, nil
}

// List retrieves products matching the filter with pagination.
func (s *ProductService) List(ctx context.Context, filter ProductFilter) (*ProductListResult, error) {
	offset, limit := utils.GetPaginationParams(filter.Offset, filter.Limit)

	query := s.db.WithContext(ctx).Model(&Product{})
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []Product
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return &ProductListResult{
		TotalCount: totalCount,
		Products:   products,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

// Update applies the non-nil fields of the update request to a product.
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, updateReq *UpdateProductDTO) (*Product, error) {
	if updateReq == nil {
		return nil, fmt.Errorf("update request cannot be nil")
	}

	product, err := s.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if updateReq.Name != nil {
		product.Name = *updateReq.Name
	}
	if updateReq.Description != nil {
		product.Description = *updateReq.Description
	}
	if updateReq.Category != nil {
		product.Category = *updateReq.Category
	}
	if updateReq.Metadata != nil {
		product.Metadata = updateReq.Metadata
	}
	if updateReq.RetailPrice != nil {
		product.RetailPrice = *updateReq.RetailPrice
	}
	if updateReq.Active != nil {
		product.Active = *updateReq.Active
	}

	if err := s.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&Product{}, "id = ?", productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s not found", productID)
	}
	return nil
}
