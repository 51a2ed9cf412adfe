package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/joshua-takyi/eventmarket/internal/services"
)

func CreateReview(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var review models.Review
		if err := c.ShouldBindJSON(&review); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		if _, err := r.CreateReview(c.Request.Context(), &review); err != nil {
			respondError(c, err)
			return
		}
	}
}

func ListEventReviews(r *services.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := r.GetEventReviews(c.Request.Context(), c.Param("event_id")); err != nil {
			respondError(c, err)
			return
		}
	}
}
