package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/service"
)

// SetupAPI wires services and handlers onto the /api/v1 group.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	v1 := router.Group("/api/v1")
	{
		authService := service.NewAuthService(db, cfg.JWTSecret)
		socialService := service.NewSocialAuthService(authService, redisClient, cfg)
		categoryService := service.NewCategoryService(db)
		resolver := service.NewExpirationResolver(categoryService)
		ingredientService := service.NewIngredientService(db, resolver)
		cookaiService := service.NewCookAIService(cfg.OllamaURL, cfg.OllamaModel, ingredientService)

		NewAuthHandler(authService, socialService).RegisterRoutes(v1)
		NewIngredientHandler(ingredientService, authService).RegisterRoutes(v1)
		NewCategoryHandler(categoryService, authService).RegisterRoutes(v1)
		NewCookAIHandler(cookaiService, authService).RegisterRoutes(v1)
	}
}

// respondError maps a service error onto its HTTP status and code.
func respondError(c *gin.Context, err error) {
	se := service.AsServiceError(err)
	c.JSON(se.Status, gin.H{"error": se.Message, "code": se.Code})
}
