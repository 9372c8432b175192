package catalog

import (
	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/models"
)

// Product represents a listed product in the sedori catalog.
type Product struct {
	models.BaseModel
	SellerID    uuid.UUID         `gorm:"type:uuid;column:seller_id;not null;index" json:"sellerId"`
	Name        string            `gorm:"type:varchar(255);column:name;not null" json:"name"`
	Description string            `gorm:"type:text;column:description" json:"description"`
	Category    string            `gorm:"type:varchar(100);column:category" json:"category"`
	Metadata    map[string]string `gorm:"type:jsonb;column:metadata;serializer:json" json:"metadata"`
	RetailPrice float64           `gorm:"type:double precision;column:retail_price;not null" json:"retailPrice"`
	Currency    string            `gorm:"type:varchar(10);column:currency;not null;default:'JPY'" json:"currency"`
	Active      bool              `gorm:"type:boolean;column:active;not null;default:true" json:"active"`
}

func (p *Product) TableName() string {
	return "products"
}

// ProductFilter will be used when querying products as a batch
type ProductFilter struct {
	SellerID *uuid.UUID `json:"sellerId,omitempty"`
	Category *string    `json:"category,omitempty"`
	Offset   *int       `json:"offset,omitempty"`
	Limit    *int       `json:"limit,omitempty"`
}

// ProductListResult represents the result of querying products with pagination
type ProductListResult struct {
	TotalCount int64     `json:"totalCount"`
	Products   []Product `json:"products"`
	Offset     int       `json:"offset"`
	Limit      int       `json:"limit"`
}

// CreateProductDTO is the request payload for creating a product.
type CreateProductDTO struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Metadata    map[string]string `json:"metadata"`
	RetailPrice float64           `json:"retailPrice" binding:"gte=0"`
	Currency    string            `json:"currency"`
}

// UpdateProductDTO is the request payload for updating a product.
// Nil fields are left unchanged.
type UpdateProductDTO struct {
	Name        *string           `json:"name,omitempty"`
	Description *string           `json:"description,omitempty"`
	Category    *string           `json:"category,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	RetailPrice *float64          `json:"retailPrice,omitempty"`
	Active      *bool             `json:"active,omitempty"`
}
