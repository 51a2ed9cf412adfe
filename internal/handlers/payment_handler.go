package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/joshua-takyi/eventmarket/internal/services"
)

func GetPayment(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		payment, err := p.GetPaymentByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(payment, ""))
	}
}

func ListUserPayments(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		userID := c.Param("user_id")
		if userID != claims.UserID {
			c.JSON(http.StatusForbidden, models.ErrorResponse("forbidden: you can only list your own payments"))
			return
		}

		payments, err := p.ListUserPayments(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(payments, ""))
	}
}

func ProcessPayment(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Method models.PaymentMethod `json:"method"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if _, err := p.ProcessPayment(c.Request.Context(), c.Param("id"), req.Method); err != nil {
			respondError(c, err)
			return
		}
	}
}

func RefundPayment(p *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := p.RefundPayment(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
	}
}
