package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/adapters/handler/http/middleware"
	"github.com/santisala23-sys/exito/internal/core/services"
)

type AuthHandler struct {
	service      *services.AuthService
	tokens       *services.TokenService
	secureCookie bool
}

func NewAuthHandler(service *services.AuthService, tokens *services.TokenService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		tokens:       tokens,
		secureCookie: secureCookie,
	}
}

type loginRequest struct {
	PIN string `json:"pin" binding:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

// Login godoc
// @Summary      Log in with the access PIN
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      loginRequest  true  "PIN"
// @Success      200      {object}  loginResponse
// @Failure      401      {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, err := h.service.Login(services.LoginInput{PIN: req.PIN})
	if err != nil {
		handleError(c, err)
		return
	}

	maxAge := int(h.tokens.Duration().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, token, maxAge, "/", "", h.secureCookie, true)

	c.JSON(http.StatusOK, loginResponse{Token: token, ExpiresIn: maxAge})
}

// Logout godoc
// @Summary      Clear the session cookie
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookieName, "", -1, "/", "", h.secureCookie, true)
	c.Status(http.StatusNoContent)
}
