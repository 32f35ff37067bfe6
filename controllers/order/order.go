package orderControllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/checkout"
	"github.com/shopnest/storefront-api/models"
)

// OrderStore is the order persistence these handlers need; the gorm store
// satisfies it.
type OrderStore interface {
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id uint) error
}

type CheckoutInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// POST /checkout
func Checkout(eng *checkout.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
			return
		}
		order, err := eng.Checkout(c.Request.Context(), c.GetString("user_id"), input.PaymentMethod)
		if err != nil {
			writeError(c, err)
			return
		}
		broadcastOrder(order)
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// GET /orders
func GetMyOrders(st OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := st.OrdersByUser(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(st OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := st.Orders(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /admin/orders/:orderID
func UpdateOrderStatus(st OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		var input UpdateStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}
		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value"})
			return
		}
		order, err := st.UpdateOrderStatus(c.Request.Context(), orderID, status)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": order})
	}
}

// DELETE /admin/orders/:orderID
func DeleteOrder(st OrderStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := orderIDParam(c)
		if !ok {
			return
		}
		if err := st.DeleteOrder(c.Request.Context(), orderID); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

func writeError(c *gin.Context, err error) {
	body := gin.H{"error": apperr.Message(err), "code": apperr.KindOf(err).String()}
	if missing := apperr.DetailsOf(err); len(missing) > 0 {
		body["missing"] = missing
	}
	c.JSON(apperr.HTTPStatus(err), body)
}
