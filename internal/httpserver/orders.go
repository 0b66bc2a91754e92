package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/auth"
	"storefront/internal/domain"
	ordersvc "storefront/internal/service/order"
)

type createOrderRequest struct {
	Items             json.RawMessage `json:"items"`
	Total             json.RawMessage `json:"total"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
}

type createOrderResponse struct {
	Success bool                   `json:"success"`
	Order   *ordersvc.Confirmation `json:"order"`
}

func (h *handlers) createOrder(c *gin.Context) {
	token, ok := auth.BearerToken(c.GetHeader("Authorization"))
	if !ok || token == "" {
		writeError(c, h.logger, h.expose, fmt.Errorf("%w: bearer token required", domain.ErrUnauthorized))
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.logger, h.expose, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}

	conf, err := h.deps.Orders.Submit(c.Request.Context(), ordersvc.SubmitInput{
		Token:             token,
		Items:             req.Items,
		Total:             req.Total,
		EstimatedDelivery: req.EstimatedDelivery,
	})
	if err != nil {
		writeError(c, h.logger, h.expose, err)
		return
	}
	c.JSON(http.StatusCreated, createOrderResponse{Success: true, Order: conf})
}

func (h *handlers) listOrders(c *gin.Context) {
	token, _ := auth.BearerToken(c.GetHeader("Authorization"))
	orders, err := h.deps.Orders.ListForUser(c.Request.Context(), token, c.Param("userId"))
	if err != nil {
		writeError(c, h.logger, h.expose, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	c.JSON(http.StatusOK, orders)
}
