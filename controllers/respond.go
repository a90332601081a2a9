package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-cart/models"
	"shopping-cart/repositories"
	"shopping-cart/services"
)

// respondError maps service errors onto the status taxonomy:
// validation → 400, bad credentials → 401, missing records → 404,
// anything else → 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrInvalidOldPassword),
		errors.Is(err, services.ErrSelfDelete),
		errors.Is(err, services.ErrProductName),
		errors.Is(err, services.ErrProductPrice):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Message: err.Error()})
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Resource not found"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Internal server error"})
	}
}
