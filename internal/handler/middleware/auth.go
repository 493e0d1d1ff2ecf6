package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"estatebook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxGuestIDKey = "guest_id"

// AuthMiddleware authenticates guests with bearer tokens issued by the
// identity platform. The engine only needs the guest identity; roles and
// permissions are not its concern.
type AuthMiddleware struct {
	tokens *jwt.Service
}

func NewAuthMiddleware(tokens *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxGuestIDKey, claims.GuestID)
		c.Set("jwt_claims", map[string]any{
			"guest_id": claims.GuestID.String(),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetGuestID(c *gin.Context) (uuid.UUID, bool) {
	guestID, exists := c.Get(ctxGuestIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := guestID.(uuid.UUID)
	return id, ok
}
