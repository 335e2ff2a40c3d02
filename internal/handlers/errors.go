package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contabil_ledger/internal/apperrors"
	"github.com/SscSPs/contabil_ledger/internal/dto"
	"github.com/SscSPs/contabil_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// statusFor maps a service error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes the error body for a failed service call. Unexpected errors are
// logged and hidden behind fallback.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(status, dto.ErrorResponse{Error: fallback})
		return
	}

	logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	body := dto.ErrorResponse{Error: err.Error()}
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		body.Error = apperrors.ErrValidation.Error()
		for _, f := range ve.Fields {
			body.Fields = append(body.Fields, dto.FieldError{Field: f.Field, Message: f.Message})
		}
	}
	c.JSON(status, body)
}

// respondBindError reports a request that failed binding or tag validation.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid request", slog.String("error", err.Error()))
	body := dto.ErrorResponse{Error: "Invalid request: " + err.Error()}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		body.Error = apperrors.ErrValidation.Error()
		for _, fe := range verrs {
			body.Fields = append(body.Fields, dto.FieldError{Field: fe.Field(), Message: "failed on " + fe.Tag()})
		}
	}
	c.JSON(http.StatusBadRequest, body)
}

// requireUserID returns the authenticated user id or aborts with 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}
