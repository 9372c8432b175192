package uploads

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/open-sedori/sedori/internal/auth"
)

// DocumentRouter exposes the compliance-document upload API.
type DocumentRouter struct {
	ds *DocumentService
}

// NewDocumentRouter creates a new DocumentRouter instance
func NewDocumentRouter(ds *DocumentService) *DocumentRouter {
	return &DocumentRouter{ds: ds}
}

// Register mounts the document routes on the given group.
func (dr *DocumentRouter) Register(rg *gin.RouterGroup) {
	docs := rg.Group("/compliance/checks/:checkId/documents", auth.RequireAuth())
	docs.POST("", dr.handleUploadDocument)
	docs.GET("", dr.handleListDocuments)

	rg.GET("/uploads/:key", dr.handleDownload)
}

// handleUploadDocument handles POST /api/compliance/checks/{checkId}/documents requests
// Multipart form: "file" carries the content, "documentName" names the
// required document it satisfies.
func (dr *DocumentRouter) handleUploadDocument(c *gin.Context) {
	checkID, err := uuid.Parse(c.Param("checkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkId: " + err.Error()})
		return
	}

	documentName := c.PostForm("documentName")
	if documentName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "documentName form field is required"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open uploaded file"})
		return
	}
	defer file.Close()

	doc, err := dr.ds.UploadDocument(c.Request.Context(), auth.GetUserID(c), checkID,
		documentName, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownDocument):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotCheckOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			slog.ErrorContext(c.Request.Context(), "document upload failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// handleListDocuments handles GET /api/compliance/checks/{checkId}/documents requests
func (dr *DocumentRouter) handleListDocuments(c *gin.Context) {
	checkID, err := uuid.Parse(c.Param("checkId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkId: " + err.Error()})
		return
	}

	docs, err := dr.ds.ListByCheck(c.Request.Context(), checkID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list documents: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, docs)
}

// handleDownload handles GET /api/uploads/{key} requests
func (dr *DocumentRouter) handleDownload(c *gin.Context) {
	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}

	reader, contentType, err := dr.ds.Download(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}
	defer reader.Close()

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	io.Copy(c.Writer, reader)
}
