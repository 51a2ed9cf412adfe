package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/joshua-takyi/eventmarket/internal/services"
)

func GetOrganizationDashboard(d *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}
		if !claims.IsOrganizer() {
			c.JSON(http.StatusForbidden, models.ErrorResponse("only organizers can view the dashboard"))
			return
		}

		stats, err := d.GetOrganizationDashboard(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(stats, ""))
	}
}
