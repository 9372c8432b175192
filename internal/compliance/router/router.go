package router

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/auth"
	"github.com/open-sedori/sedori/internal/compliance/model"
	"github.com/open-sedori/sedori/internal/compliance/service"
)

// ComplianceRouter exposes the compliance check API.
type ComplianceRouter struct {
	cs *service.CheckService
}

// NewComplianceRouter creates a new ComplianceRouter instance
func NewComplianceRouter(cs *service.CheckService) *ComplianceRouter {
	return &ComplianceRouter{cs: cs}
}

// Register mounts the compliance routes on the given group. All routes
// require an authenticated user; the check runs against that user's licenses.
func (cr *ComplianceRouter) Register(rg *gin.RouterGroup) {
	checks := rg.Group("/compliance", auth.RequireAuth())
	checks.POST("/checks", cr.handleRunCheck)
	checks.GET("/checks/:checkId", cr.handleGetCheck)
	checks.GET("/checks", cr.handleListChecks)
	checks.GET("/gate", cr.handleGateStatus)
}

// handleRunCheck handles POST /api/compliance/checks requests
func (cr *ComplianceRouter) handleRunCheck(c *gin.Context) {
	var req service.RunCheckDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	check, err := cr.cs.RunCheck(c.Request.Context(), auth.GetUserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run compliance check: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, check)
}

// handleGetCheck handles GET /api/compliance/checks/{checkId} requests
func (cr *ComplianceRouter) handleGetCheck(c *gin.Context) {
	checkID, err := uuid.Parse(c.Param("checkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkId: " + err.Error()})
		return
	}

	check, err := cr.cs.GetCheck(c.Request.Context(), checkID)
	if err != nil {
		if errors.Is(err, service.ErrCheckNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "compliance check not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get compliance check: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, check)
}

// handleListChecks handles GET /api/compliance/checks requests
// Optional query filters: productId, status, offset, limit. Results are
// always scoped to the authenticated user.
func (cr *ComplianceRouter) handleListChecks(c *gin.Context) {
	userID := auth.GetUserID(c)
	filter := model.ComplianceCheckFilter{UserID: &userID}

	if productIDStr := c.Query("productId"); productIDStr != "" {
		productID, err := uuid.Parse(productIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId: " + err.Error()})
			return
		}
		filter.ProductID = &productID
	}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
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

	result, err := cr.cs.ListChecks(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list compliance checks: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleGateStatus handles GET /api/compliance/gate?productId={productId} requests
func (cr *ComplianceRouter) handleGateStatus(c *gin.Context) {
	productIDStr := c.Query("productId")
	if productIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing productId query parameter"})
		return
	}
	productID, err := uuid.Parse(productIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid productId: " + err.Error()})
		return
	}

	status, err := cr.cs.GateStatus(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve gate status: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"productId": productID, "status": status})
}
