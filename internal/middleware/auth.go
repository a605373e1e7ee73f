package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/fsw-barber/booking-api/internal/config"
)

const (
	ContextUserID       = "userID"
	ContextUserRole     = "userRole"
	ContextBarbershopID = "barbershopID"
)

func parseToken(c *gin.Context, cfg *config.Config) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	return claims, true
}

func setIdentity(c *gin.Context, claims jwt.MapClaims) bool {
	userID, ok := claims["sub"].(float64)
	if !ok {
		return false
	}

	role, _ := claims["role"].(string)

	c.Set(ContextUserID, uint(userID))
	c.Set(ContextUserRole, role)

	if shopID, ok := claims["barbershopId"].(float64); ok {
		c.Set(ContextBarbershopID, uint(shopID))
	}

	return true
}

// AuthRequired rejects requests without a valid bearer token.
func AuthRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, cfg)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		if !setIdentity(c, claims) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		c.Next()
	}
}

// AuthOptional populates the identity when a valid token is present
// and lets the request through either way. The booking submitter is
// the one deciding what an unauthenticated attempt means.
func AuthOptional(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, cfg); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// OwnerOnly guards shop-management routes. Must run after
// AuthRequired.
func OwnerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if role != "owner" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "owner_only"})
			return
		}
		c.Next()
	}
}
