package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

type IngredientHandler struct {
	ingredientService *service.IngredientService
	authService       *service.AuthService
}

func NewIngredientHandler(ingredientService *service.IngredientService, authService *service.AuthService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService, authService: authService}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	ingredients := router.Group("/ingredients", middleware.AuthMiddleware(h.authService))
	{
		ingredients.POST("", h.CreateIngredient)
		ingredients.POST("/bulk", h.CreateIngredients)
		ingredients.GET("", h.ListIngredients)
		ingredients.DELETE("/:name", h.DeleteIngredient)
	}
}

func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.IngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := req.Date()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.ingredientService.CreateOne(c.Request.Context(), userID, service.IngredientInput{
		Name:           req.Name,
		ExpirationDate: date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *IngredientHandler) CreateIngredients(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req types.BulkIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inputs := make([]service.IngredientInput, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		date, err := item.Date()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		inputs = append(inputs, service.IngredientInput{Name: item.Name, ExpirationDate: date})
	}

	result, err := h.ingredientService.CreateMany(c.Request.Context(), userID, inputs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ingredients, err := h.ingredientService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	schemas := make([]types.IngredientSchema, 0, len(ingredients))
	for _, ing := range ingredients {
		schemas = append(schemas, types.NewIngredientSchema(ing))
	}
	c.JSON(http.StatusOK, types.IngredientListSchema{Ingredients: schemas})
}

func (h *IngredientHandler) DeleteIngredient(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	if err := h.ingredientService.Delete(c.Request.Context(), userID, c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
