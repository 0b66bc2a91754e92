package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/metrics"
	"storefront/internal/payment"
)

type createIntentRequest struct {
	Amount *float64 `json:"amount"`
}

type confirmPaymentRequest struct {
	ClientSecret  string `json:"clientSecret" binding:"required"`
	PaymentMethod string `json:"paymentMethod"`
}

func (h *handlers) createPaymentIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount == nil {
		metrics.PaymentIntent("invalid_amount")
		writeError(c, h.logger, h.expose, fmt.Errorf("%w: amount must be a number", payment.ErrInvalidAmount))
		return
	}

	secret, err := h.deps.Payments.CreateIntent(c.Request.Context(), *req.Amount, c.GetHeader("Idempotency-Key"))
	if err != nil {
		metrics.PaymentIntent(paymentOutcome(err))
		writeError(c, h.logger, h.expose, err)
		return
	}
	metrics.PaymentIntent("created")
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

func (h *handlers) confirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, h.expose, fmt.Errorf("%w: clientSecret is required", payment.ErrInvalidClientSecret))
		return
	}
	res, err := h.deps.Payments.Confirm(c.Request.Context(), req.ClientSecret, req.PaymentMethod)
	if err != nil {
		writeError(c, h.logger, h.expose, err)
		return
	}
	if !res.Succeeded {
		c.JSON(http.StatusPaymentRequired, gin.H{"status": res.Status, "message": res.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": res.Status})
}

func paymentOutcome(err error) string {
	var providerErr *payment.ProviderError
	switch {
	case errors.Is(err, payment.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, payment.ErrConfiguration):
		return "not_configured"
	case errors.As(err, &providerErr):
		return "provider_error"
	}
	return "error"
}
