package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventmarket/internal/models"
	"github.com/joshua-takyi/eventmarket/internal/services"
)

func RegisterSupplier(s *services.SupplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var supplier models.Supplier
		if err := c.ShouldBindJSON(&supplier); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		supplier.UserID = claims.UserID

		created, err := s.RegisterSupplier(c.Request.Context(), &supplier)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Supplier registered successfully"))
	}
}

func GetSupplierByUser(s *services.SupplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplier, err := s.GetSupplierByUserID(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(supplier, ""))
	}
}

func UpdateSupplier(s *services.SupplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := currentClaims(c)
		if !ok {
			return
		}

		var supplier models.Supplier
		if err := c.ShouldBindJSON(&supplier); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		supplier.UserID = claims.UserID

		updated, err := s.UpdateSupplier(c.Request.Context(), c.Param("id"), &supplier)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Supplier updated successfully"))
	}
}

func DeleteSupplier(s *services.SupplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentClaims(c); !ok {
			return
		}

		if err := s.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Supplier deleted successfully"))
	}
}

func ListSuppliers(s *services.SupplierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		suppliers, err := s.ListSuppliers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(suppliers, ""))
	}
}
