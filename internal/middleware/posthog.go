package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const eventPropsKey = "analyticsEventProps"

// EventSink receives product analytics events. *utils.PosthogClientWrapper satisfies it.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID string, event string, properties map[string]any)
}

var writeActions = map[string]string{
	http.MethodPost:   "create",
	http.MethodPut:    "update",
	http.MethodPatch:  "update",
	http.MethodDelete: "delete",
}

// EventName names the analytics event of a successful write, e.g.
// PATCH /api/v1/titles/:id/pay becomes ("title", "pay"). Reads and unknown routes
// produce ok == false.
func EventName(method, fullPath string) (resource, action string, ok bool) {
	action, ok = writeActions[method]
	if !ok {
		return "", "", false
	}
	segments := strings.Split(strings.Trim(strings.TrimPrefix(fullPath, "/api/v1"), "/"), "/")
	if len(segments) == 0 || segments[0] == "" || strings.HasPrefix(segments[0], ":") {
		return "", "", false
	}
	resource = strings.ReplaceAll(strings.TrimSuffix(segments[0], "s"), "-", "_")
	if last := segments[len(segments)-1]; len(segments) > 1 && !strings.HasPrefix(last, ":") {
		action = strings.ReplaceAll(last, "-", "_")
	}
	return resource, action, true
}

// AddEventProperties attaches domain fields (posted value, journal entry, ...) to the
// event the analytics middleware sends once the handler has finished.
func AddEventProperties(c *gin.Context, props map[string]any) {
	merged, _ := c.Get(eventPropsKey)
	current, _ := merged.(map[string]any)
	if current == nil {
		current = make(map[string]any, len(props))
	}
	for k, v := range props {
		current[k] = v
	}
	c.Set(eventPropsKey, current)
}

// PosthogMiddleware sends one "<resource>_<action>" event per successful write made by
// an authenticated user.
func PosthogMiddleware(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if len(c.Errors) > 0 || status >= http.StatusBadRequest {
			return
		}
		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}
		resource, action, ok := EventName(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		props := map[string]any{
			"resource":    resource,
			"action":      action,
			"status_code": status,
		}
		if id := c.Param("id"); id != "" {
			props["entity_id"] = id
		}
		if extra, ok := c.Get(eventPropsKey); ok {
			for k, v := range extra.(map[string]any) {
				props[k] = v
			}
		}
		sink.Enqueue(userID, resource+"_"+action, props)
	}
}
