package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/upload"
)

// ============================================
// Upload Handler
// ============================================

type UploadHandler struct {
	uploader *upload.Uploader
}

// Upload - Store a wizard asset and return its public URL
// POST /admin/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	uploadType := c.PostForm("type")

	url, err := h.uploader.Save(fileHeader, uploadType)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, models.UploadResponse{URL: url})
}
