package middleware

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/contabil_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// CapabilitiesMiddleware resolves the authenticated user's permissions once per request.
// It must run after AuthMiddleware.
func CapabilitiesMiddleware(permissions portssvc.PermissionSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		caps, err := permissions.CapabilitiesForUser(c.Request.Context(), userID)
		if err != nil {
			logger.Error("Failed to resolve user capabilities", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unable to resolve user permissions"})
			return
		}

		c.Set(string(capabilitiesKey), caps)
		c.Next()
	}
}
