package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/cart"
	"github.com/shopnest/storefront-api/models"
	"github.com/shopnest/storefront-api/store"
)

type UpdateProfileInput struct {
	Name    *string         `json:"name"`
	Email   *string         `json:"email"`
	Phone   *string         `json:"phone"`
	Address *models.Address `json:"address"`
}

type meResponse struct {
	*models.User
	Cart []cart.Line `json:"cart"`
}

// GET /me — the profile plus the cart joined with live catalog data, which
// is what the storefront renders on load.
func GetMe(st *store.Store, eng *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		user, err := st.User(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		lines, err := eng.Read(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, meResponse{User: user, Cart: lines})
	}
}

// PUT /profile — partial update; absent fields keep their values, and the
// address merges field by field.
func UpdateProfile(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := st.User(c.Request.Context(), c.GetString("user_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}
		if input.Address != nil {
			user.Address = mergeAddress(user.Address, *input.Address)
		}

		if err := st.SaveUser(c.Request.Context(), user); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.Users(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func mergeAddress(current, update models.Address) models.Address {
	if update.Street != "" {
		current.Street = update.Street
	}
	if update.Pincode != "" {
		current.Pincode = update.Pincode
	}
	if update.Landmark != "" {
		current.Landmark = update.Landmark
	}
	if update.City != "" {
		current.City = update.City
	}
	if update.State != "" {
		current.State = update.State
	}
	return current
}

func writeError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err), "code": apperr.KindOf(err).String()})
}
