package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/auth"
)

// RequireUser validates the session cookie and puts the principal's id into
// the context as "user_id". The engines trust this id; no credential checks
// happen past this point.
func RequireUser(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
		return
	}

	c.Set("user_id", id)
	c.Next()
}

// RequireAdmin additionally checks the admin role claim.
func RequireAdmin(c *gin.Context) {
	tokenString, err := c.Cookie(auth.CookieName)
	if err != nil || tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
		return
	}
	if role, _ := claims["role"].(string); role != "admin" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Admins only"})
		return
	}
	// numeric claims decode as float64
	id, ok := claims["id"].(float64)
	if !ok {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid token claims"})
		return
	}

	c.Set("admin_id", uint(id))
	c.Next()
}
