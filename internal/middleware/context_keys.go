package middleware

import (
	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// userIDKey is the key used to store the authenticated user's ID.
	userIDKey = contextKey("userID")
	// capabilitiesKey holds the caller's resolved domain.Capabilities.
	capabilitiesKey = contextKey("capabilities")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get(string(userIDKey))
	if !exists {
		// check in the request context as well
		userID, ok := c.Request.Context().Value(userIDKey).(string)
		return userID, ok && userID != ""
	}

	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}

	return userID, true
}

// GetCapabilitiesFromContext returns the capabilities loaded by CapabilitiesMiddleware.
// A request that never went through it gets the empty set, which grants nothing.
func GetCapabilitiesFromContext(c *gin.Context) domain.Capabilities {
	if v, exists := c.Get(string(capabilitiesKey)); exists {
		if caps, ok := v.(domain.Capabilities); ok {
			return caps
		}
	}
	return domain.Capabilities{}
}
