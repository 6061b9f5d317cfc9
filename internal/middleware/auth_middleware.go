package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupulse/edupulse/internal/app/models"
	"github.com/edupulse/edupulse/internal/app/models/dto"
	"github.com/edupulse/edupulse/internal/pkg/auth"
)

// Context keys set by the auth middleware
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// JWTAuth validates the bearer token and stores the caller's identity
// in the request context.
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthorized(c, "Authorization header is missing or malformed")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired restricts a route to the given roles. With no roles
// listed, any authenticated caller passes.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(roles) == 0 {
			c.Next()
			return
		}

		role := RoleFromContext(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden,
			"You do not have permission to perform this action")
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail))
		c.Abort()
	}
}

// UserIDFromContext reads the authenticated user ID set by JWTAuth
func UserIDFromContext(c *gin.Context) int64 {
	if v, ok := c.Get(ContextUserID); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RoleFromContext reads the role set by JWTAuth
func RoleFromContext(c *gin.Context) models.Role {
	if v, ok := c.Get(ContextRole); ok {
		if role, ok := v.(models.Role); ok {
			return role
		}
	}
	return models.RoleNone
}

func abortUnauthorized(c *gin.Context, message string) {
	detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, message)
	c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
	c.Abort()
}
