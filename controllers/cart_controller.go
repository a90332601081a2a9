package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopping-cart/models"
	"shopping-cart/services"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// Get godoc
// @Summary Get own cart
// @Description Returns an empty cart when none exists yet
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Cart
// @Router /cart [get]
func (ctrl *CartController) Get(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddItem godoc
// @Summary Add item to cart
// @Description Merges quantity when the product is already in the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item"
// @Success 200 {object} models.Cart
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	cart, err := ctrl.carts.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// UpdateItem godoc
// @Summary Update item quantity
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body models.UpdateCartItemRequest true "Quantity"
// @Success 200 {object} models.Cart
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{productId} [put]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	cart, err := ctrl.carts.UpdateItemQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveItem godoc
// @Summary Remove item from cart
// @Description Succeeds even when the product is not in the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} models.Cart
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil || productID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid product ID"})
		return
	}

	cart, err := ctrl.carts.RemoveItem(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// Export godoc
// @Summary Export cart as a JSON download
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Cart
// @Router /cart/export [get]
func (ctrl *CartController) Export(c *gin.Context) {
	userID := c.GetInt("user_id")

	cart, err := ctrl.carts.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="cart-%d.json"`, userID))
	c.JSON(http.StatusOK, cart)
}
