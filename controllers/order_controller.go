package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopping-cart/models"
	"shopping-cart/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// Create godoc
// @Summary Create order from cart
// @Description Converts the cart into a paid order and clears the cart
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateOrderRequest true "Shipping and payment"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.ErrorResponse
// @Router /orders [post]
func (ctrl *OrderController) Create(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: "Invalid request body"})
		return
	}

	order, err := ctrl.orders.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListMine godoc
// @Summary List own orders
// @Description Most recent first
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Order
// @Router /orders/myorders [get]
func (ctrl *OrderController) ListMine(c *gin.Context) {
	userID := c.GetInt("user_id")

	orders, err := ctrl.orders.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// ListAll godoc
// @Summary List all orders
// @Description All users' orders with buyer identity, most recent first
// @Tags Admin - Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.AdminOrder
// @Router /orders [get]
func (ctrl *OrderController) ListAll(c *gin.Context) {
	orders, err := ctrl.orders.ListAllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
