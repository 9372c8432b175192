package catalog

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/auth"
)

// ProductRouter exposes the catalog CRUD API.
type ProductRouter struct {
	ps *ProductService
}

// NewProductRouter creates a new ProductRouter instance
func NewProductRouter(ps *ProductService) *ProductRouter {
	return &ProductRouter{ps: ps}
}

// Register mounts the catalog routes. Reads are public; writes require auth.
func (pr *ProductRouter) Register(rg *gin.RouterGroup) {
	rg.GET("/products", pr.handleListProducts)
	rg.GET("/products/:productId", pr.handleGetProduct)

	protected := rg.Group("/products", auth.RequireAuth())
	protected.POST("", pr.handleCreateProduct)
	protected.PUT("/:productId", pr.handleUpdateProduct)
	protected.DELETE("/:productId", pr.handleDeleteProduct)
}

// handleCreateProduct handles POST /api/products requests
func (pr *ProductRouter) handleCreateProduct(c *gin.Context) {
	var req CreateProductDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product, err := pr.ps.Create(c.Request.Context(), auth.GetUserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// handleGetProduct handles GET /api/products/{productId} requests
func (pr *ProductRouter) handleGetProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId: " + err.Error()})
		return
	}

	product, err := pr.ps.GetByID(c.Request.Context(), productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// handleListProducts handles GET /api/products requests
// Optional query filters: sellerId, category, offset, limit
func (pr *ProductRouter) handleListProducts(c *gin.Context) {
	var filter ProductFilter

	if sellerIDStr := c.Query("sellerId"); sellerIDStr != "" {
		sellerID, err := uuid.Parse(sellerIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sellerId: " + err.Error()})
			return
		}
		filter.SellerID = &sellerID
	}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	var pagination struct {
		Offset *int `form:"offset"`
		Limit  *int `form:"limit"`
	}
	if err := c.ShouldBindQuery(&pagination); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination parameters: " + err.Error()})
		return
	}
	filter.Offset = pagination.Offset
	filter.Limit = pagination.Limit

	result, err := pr.ps.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleUpdateProduct handles PUT /api/products/{productId} requests
func (pr *ProductRouter) handleUpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId: " + err.Error()})
		return
	}

	existing, err := pr.ps.GetByID(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if existing.SellerID != auth.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "product belongs to another seller"})
		return
	}

	var req UpdateProductDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	product, err := pr.ps.Update(c.Request.Context(), productID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, product)
}

// handleDeleteProduct handles DELETE /api/products/{productId} requests
func (pr *ProductRouter) handleDeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId: " + err.Error()})
		return
	}

	existing, err := pr.ps.GetByID(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if existing.SellerID != auth.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "product belongs to another seller"})
		return
	}

	if err := pr.ps.Delete(c.Request.Context(), productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
