package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

type AuthHandler struct {
	authService   *service.AuthService
	socialService *service.SocialAuthService
}

func NewAuthHandler(authService *service.AuthService, socialService *service.SocialAuthService) *AuthHandler {
	return &AuthHandler{authService: authService, socialService: socialService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("/sign-up", h.SignUp)
		users.POST("/log-in", h.LogIn)
		users.GET("/:provider", h.SocialAuthURL)
		users.GET("/:provider/callback", h.SocialCallback)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req types.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.NewUserSchema(user))
}

func (h *AuthHandler) LogIn(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.JWTResponse{AccessToken: token, TokenType: "Bearer"})
}

// SocialAuthURL returns the provider consent URL as JSON; the frontend cannot
// follow a bare redirect response.
func (h *AuthHandler) SocialAuthURL(c *gin.Context) {
	authURL, err := h.socialService.AuthURL(c.Request.Context(), c.Param("provider"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

func (h *AuthHandler) SocialCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and state are required"})
		return
	}

	token, err := h.socialService.Callback(c.Request.Context(), c.Param("provider"), code, state)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.JWTResponse{AccessToken: token, TokenType: "Bearer"})
}
