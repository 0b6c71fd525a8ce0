package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/santisala23-sys/exito/internal/core/services"
)

const (
	// AuthCookieName carries the session token for browser clients.
	AuthCookieName = "exito_auth"

	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	ContextSubjectKey   = "subject"
)

// tokenFromRequest prefers the Authorization header and falls back to the
// session cookie.
func tokenFromRequest(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader(authorizationHeader); authHeader != "" {
		fields := strings.Fields(authHeader)
		if len(fields) < 2 || fields[0] != authorizationType {
			return "", false
		}
		return fields[1], true
	}

	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie == "" {
		return "", false
	}
	return cookie, true
}

func AuthMiddleware(tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := tokenFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		subject, err := tokenService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextSubjectKey, subject)

		c.Next()
	}
}

func GetSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextSubjectKey)
	if !exists {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
