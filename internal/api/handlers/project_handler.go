package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/richei-group/richei-backend/internal/api/middleware"
	"github.com/richei-group/richei-backend/internal/models"
	"github.com/richei-group/richei-backend/internal/service"
	"github.com/richei-group/richei-backend/internal/validation"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

// Create - Create a project with all child collections
// POST /admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	userID, ok := middleware.RequireUserID(c)
	if !ok {
		return
	}

	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	agg, err := h.projectService.Create(c.Request.Context(), &req, userID)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": verrs})
			return
		}
		if errors.Is(err, service.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Project slug already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, toProjectDetailResponse(agg))
}

// AdminList - Filtered listing for the admin dashboard
// GET /admin/projects
func (h *ProjectHandler) AdminList(c *gin.Context) {
	var filter models.AdminProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, pagination, err := h.projectService.AdminList(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, toProjectListResponse(items, pagination))
}

// Search - Free-text search across name, slug and description
// GET /admin/projects/search
func (h *ProjectHandler) Search(c *gin.Context) {
	var query models.AdminProjectSearch
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, pagination, err := h.projectService.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search projects"})
		return
	}

	c.JSON(http.StatusOK, toProjectListResponse(items, pagination))
}

// AdminGet - Full aggregate by ID
// GET /admin/projects/:id
func (h *ProjectHandler) AdminGet(c *gin.Context) {
	agg, err := h.projectService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, toProjectDetailResponse(agg))
}

// List - Public listing for investors
// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	var query models.ProjectListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, pagination, err := h.projectService.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, toProjectListResponse(items, pagination))
}

// GetBySlug - Full aggregate by public slug
// GET /projects/:slug
func (h *ProjectHandler) GetBySlug(c *gin.Context) {
	agg, err := h.projectService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	c.JSON(http.StatusOK, toProjectDetailResponse(agg))
}
