package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

type CookAIHandler struct {
	cookaiService *service.CookAIService
	authService   *service.AuthService
}

func NewCookAIHandler(cookaiService *service.CookAIService, authService *service.AuthService) *CookAIHandler {
	return &CookAIHandler{cookaiService: cookaiService, authService: authService}
}

func (h *CookAIHandler) RegisterRoutes(router *gin.RouterGroup) {
	cookai := router.Group("/cookai", middleware.AuthMiddleware(h.authService))
	{
		cookai.GET("/suggestions", h.SuggestRecipes)
		cookai.POST("/recipe", h.FoodRecipe)
		cookai.POST("/quick", h.QuickRecipe)
		cookai.POST("/search", h.SearchRecipe)
	}
}

func (h *CookAIHandler) SuggestRecipes(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	result, err := h.cookaiService.SuggestRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

func (h *CookAIHandler) FoodRecipe(c *gin.Context) {
	var req types.CookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.cookaiService.FoodRecipe(c.Request.Context(), req.Food, req.UseIngredients)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

func (h *CookAIHandler) QuickRecipe(c *gin.Context) {
	var req types.QuickRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.cookaiService.QuickRecipe(c.Request.Context(), req.Chat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}

func (h *CookAIHandler) SearchRecipe(c *gin.Context) {
	var req types.SearchRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.cookaiService.SearchRecipe(c.Request.Context(), req.Chat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", result)
}
