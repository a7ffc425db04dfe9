package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

// CategoryHandler exposes the admin-only category table mutation surface.
type CategoryHandler struct {
	categoryService *service.CategoryService
	authService     *service.AuthService
}

func NewCategoryHandler(categoryService *service.CategoryService, authService *service.AuthService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, authService: authService}
}

func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/admin/categories",
		middleware.AuthMiddleware(h.authService),
		middleware.AdminRequired(h.authService),
	)
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.PATCH("/:name", h.UpdateShelfLife)
		categories.DELETE("/:name", h.DeleteCategory)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.NewCategorySchema(*category))
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	schemas := make([]types.CategorySchema, 0, len(categories))
	for _, cat := range categories {
		schemas = append(schemas, types.NewCategorySchema(cat))
	}
	c.JSON(http.StatusOK, types.CategoryListSchema{Categories: schemas})
}

func (h *CategoryHandler) UpdateShelfLife(c *gin.Context) {
	var req types.CategoryExpirationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.categoryService.UpdateShelfLife(c.Request.Context(), c.Param("name"), req.DefaultExpirationDays); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shelf life updated"})
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
