package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/payment"
	usersvc "storefront/internal/service/user"
)

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	var providerErr *payment.ProviderError
	switch {
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, usersvc.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrInvalidClientSecret):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateOrder), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStoreUnavailable),
		errors.Is(err, payment.ErrConfiguration),
		errors.As(err, &providerErr):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// publicMessage is the message shown when internal detail is hidden.
func publicMessage(err error, status int) string {
	var providerErr *payment.ProviderError
	switch {
	case errors.Is(err, payment.ErrConfiguration):
		return "Payment provider is not configured"
	case errors.As(err, &providerErr):
		return "Payment provider error"
	case errors.Is(err, domain.ErrStoreUnavailable):
		return "Order store is unavailable, please try again"
	case errors.Is(err, domain.ErrInvalidReference):
		return "Invalid user or product reference"
	case errors.Is(err, domain.ErrDuplicateOrder):
		return "Order could not be created, please retry"
	case status >= http.StatusInternalServerError:
		return "Internal server error"
	}
	return err.Error()
}

func writeError(c *gin.Context, logger *zap.Logger, expose bool, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	body := gin.H{"message": publicMessage(err, status)}
	if expose {
		body["message"] = err.Error()
		if status >= http.StatusInternalServerError {
			body["error"] = err.Error()
		}
	}
	c.AbortWithStatusJSON(status, body)
}
