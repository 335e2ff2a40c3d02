package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/contabil_ledger/internal/core/domain"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/SscSPs/contabil_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var signer = utils.NewTokenSigner("middleware-test-secret", "contabil-test", time.Hour)

type mockPermissionSvc struct {
	mock.Mock
}

func (m *mockPermissionSvc) CapabilitiesForUser(ctx context.Context, userID string) (domain.Capabilities, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.Capabilities), args.Error(1)
}

func newRouter(perms *mockPermissionSvc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(signer), middleware.CapabilitiesMiddleware(perms))
	router.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		caps := middleware.GetCapabilitiesFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID, "canPay": caps.Can(domain.ActionUpdate, domain.ResourceTitle)})
	})
	return router
}

func TestAuthAndCapabilities(t *testing.T) {
	validToken, _, _ := signer.Sign("user-1")
	expiredToken, _, _ := utils.NewTokenSigner("middleware-test-secret", "contabil-test", -time.Hour).Sign("user-1")
	foreignToken, _, _ := utils.NewTokenSigner("middleware-test-secret", "someone-else", time.Hour).Sign("user-1")
	anonymousToken, _, _ := signer.Sign("")

	tests := []struct {
		name       string
		header     string
		setupMock  func(m *mockPermissionSvc)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			header:     "",
			setupMock:  func(m *mockPermissionSvc) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Authorization header required",
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			setupMock:  func(m *mockPermissionSvc) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Bearer {token}",
		},
		{
			name:       "expired token",
			header:     "Bearer " + expiredToken,
			setupMock:  func(m *mockPermissionSvc) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Token has expired",
		},
		{
			name:       "token from another issuer",
			header:     "Bearer " + foreignToken,
			setupMock:  func(m *mockPermissionSvc) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token",
		},
		{
			name:       "token without subject",
			header:     "Bearer " + anonymousToken,
			setupMock:  func(m *mockPermissionSvc) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid token claims",
		},
		{
			name:   "capabilities lookup fails",
			header: "Bearer " + validToken,
			setupMock: func(m *mockPermissionSvc) {
				m.On("CapabilitiesForUser", mock.Anything, "user-1").Return(domain.Capabilities{}, errors.New("db down")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Unable to resolve user permissions",
		},
		{
			name:   "authorized",
			header: "Bearer " + validToken,
			setupMock: func(m *mockPermissionSvc) {
				caps := domain.NewCapabilities(domain.Permission{Resource: domain.ResourceTitle, Action: domain.ActionUpdate})
				m.On("CapabilitiesForUser", mock.Anything, "user-1").Return(caps, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"canPay":true,"user":"user-1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perms := new(mockPermissionSvc)
			tt.setupMock(perms)
			router := newRouter(perms)

			req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			perms.AssertExpectations(t)
		})
	}
}

func TestGetCapabilitiesWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	caps := middleware.GetCapabilitiesFromContext(c)
	assert.False(t, caps.Can(domain.ActionRead, domain.ResourceTitle))
}

func TestStructuredLoggingMiddlewareSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(middleware.GetLoggerFromCtx(context.Background())))
	router.GET("/ping", func(c *gin.Context) {
		assert.NotNil(t, middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-42")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "req-42", w.Header().Get("X-Request-ID"))
}
