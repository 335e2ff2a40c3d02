package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/SscSPs/contabil_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testJWTSecret = "test-secret-key-that-is-long-enough"
	testJWTIssuer = "contabil-test"
)

var testSigner = utils.NewTokenSigner(testJWTSecret, testJWTIssuer, time.Hour)

var managerCaps = domain.NewCapabilities(domain.Permission{Resource: domain.ResourceAll, Action: domain.ActionManage})

// generateTestToken creates a signed HS256 token for userID.
func generateTestToken(t *testing.T, userID string) string {
	t.Helper()
	signed, _, err := testSigner.Sign(userID)
	require.NoError(t, err)
	return signed
}

// newTestRouter returns an engine whose /api/v1 group authenticates with the test secret
// and resolves every caller to caps.
func newTestRouter(caps domain.Capabilities) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)
	perms := new(MockPermissionService)
	perms.On("CapabilitiesForUser", mock.Anything, mock.Anything).Return(caps, nil)

	router := gin.New()
	v1 := router.Group("/api/v1", middleware.AuthMiddleware(testSigner), middleware.CapabilitiesMiddleware(perms))
	return router, v1
}

// doRequest serves one request, JSON-encoding body when it is not nil.
func doRequest(t *testing.T, router http.Handler, method, url, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
