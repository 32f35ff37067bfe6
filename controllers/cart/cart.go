package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/cart"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	// pointer so 0 survives binding's required check
	Quantity *int `json:"quantity" binding:"required"`
}

// POST /cart
func AddToCart(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		lines, err := eng.AddOrMerge(c.Request.Context(), c.GetString("user_id"), input.ProductID, input.Quantity)
		respond(c, lines, err)
	}
}

// POST /cart/:productID/increase
func IncreaseQuantity(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		lines, err := eng.Increment(c.Request.Context(), c.GetString("user_id"), productID)
		respond(c, lines, err)
	}
}

// POST /cart/:productID/decrease
func DecreaseQuantity(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		lines, err := eng.Decrement(c.Request.Context(), c.GetString("user_id"), productID)
		respond(c, lines, err)
	}
}

// PUT /cart/:productID
func SetQuantity(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be an integer >= 0"})
			return
		}
		lines, err := eng.SetQuantity(c.Request.Context(), c.GetString("user_id"), productID, *input.Quantity)
		respond(c, lines, err)
	}
}

// DELETE /cart/:productID
func RemoveFromCart(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, ok := productIDParam(c)
		if !ok {
			return
		}
		lines, err := eng.Remove(c.Request.Context(), c.GetString("user_id"), productID)
		respond(c, lines, err)
	}
}

// GET /cart
func GetCart(eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := eng.Read(c.Request.Context(), c.GetString("user_id"))
		respond(c, lines, err)
	}
}

func productIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

func respond(c *gin.Context, lines []cart.Line, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func writeError(c *gin.Context, err error) {
	body := gin.H{"error": apperr.Message(err), "code": apperr.KindOf(err).String()}
	if missing := apperr.DetailsOf(err); len(missing) > 0 {
		body["missing"] = missing
	}
	c.JSON(apperr.HTTPStatus(err), body)
}
