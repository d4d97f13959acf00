package api

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/biniyam-ayele29/savor-admin/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware enforces a valid JWT and exposes its claims on the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authorization header required"})
			c.Abort()
			return
		}
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid authorization format"})
			c.Abort()
			return
		}
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			log.Printf("[AUTH] JWT_SECRET not set")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Server not configured"})
			c.Abort()
			return
		}
		token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid token"})
			c.Abort()
			return
		}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			c.Set("user_id", claims["user_id"])
			c.Set("email", claims["email"])
			if r, ok := claims["role"].(string); ok {
				c.Set("role", r)
			}
			if sa, ok := claims["is_super_admin"].(bool); ok {
				c.Set("is_super_admin", sa)
			}
		}
		c.Next()
	}
}

// AdminMiddleware admits any dashboard role (super_admin or admin).
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetRole(c)
		if role != models.RoleSuperAdmin && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SuperAdminMiddleware admits only the super_admin role. Company writes and
// admin provisioning sit behind this gate.
func SuperAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetRole(c) != models.RoleSuperAdmin {
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "Super admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the authenticated user id from the context.
func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// GetRole extracts the authenticated role from the context, empty when absent.
func GetRole(c *gin.Context) string {
	v, exists := c.Get("role")
	if !exists {
		return ""
	}
	role, _ := v.(string)
	return role
}
