package license

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/auth"
)

// LicenseRouter exposes the license-management API. Every route operates on
// the authenticated user's own licenses.
type LicenseRouter struct {
	ls *LicenseService
}

// NewLicenseRouter creates a new LicenseRouter instance
func NewLicenseRouter(ls *LicenseService) *LicenseRouter {
	return &LicenseRouter{ls: ls}
}

// Register mounts the license routes on the given group.
func (lr *LicenseRouter) Register(rg *gin.RouterGroup) {
	licenses := rg.Group("/licenses", auth.RequireAuth())
	licenses.POST("", lr.handleCreateLicense)
	licenses.GET("", lr.handleListLicenses)
	licenses.GET("/:licenseId", lr.handleGetLicense)
	licenses.POST("/:licenseId/revoke", lr.handleRevokeLicense)
}

// handleCreateLicense handles POST /api/licenses requests
func (lr *LicenseRouter) handleCreateLicense(c *gin.Context) {
	var req CreateLicenseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	lic, err := lr.ls.Create(c.Request.Context(), auth.GetUserID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create license: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, lic)
}

// handleListLicenses handles GET /api/licenses requests
func (lr *LicenseRouter) handleListLicenses(c *gin.Context) {
	licenses, err := lr.ls.ListByUser(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list licenses: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, licenses)
}

// handleGetLicense handles GET /api/licenses/{licenseId} requests
func (lr *LicenseRouter) handleGetLicense(c *gin.Context) {
	licenseID, err := uuid.Parse(c.Param("licenseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid licenseId: " + err.Error()})
		return
	}

	lic, err := lr.ls.GetByID(c.Request.Context(), licenseID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{"error": "license not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get license: " + err.Error()})
		return
	}
	if lic.UserID != auth.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "license belongs to another user"})
		return
	}

	c.JSON(http.StatusOK, lic)
}

// handleRevokeLicense handles POST /api/licenses/{licenseId}/revoke requests
func (lr *LicenseRouter) handleRevokeLicense(c *gin.Context) {
	licenseID, err := uuid.Parse(c.Param("licenseId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid licenseId: " + err.Error()})
		return
	}

	lic, err := lr.ls.GetByID(c.Request.Context(), licenseID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "license not found"})
		return
	}
	if lic.UserID != auth.GetUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "license belongs to another user"})
		return
	}

	if err := lr.ls.Revoke(c.Request.Context(), licenseID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke license: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
