package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
	"github.com/shopnest/storefront-api/store"
)

type AdminRegisterInput struct {
	Name     string `json:"name" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /admin/register
func AdminRegister(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AdminRegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		email := strings.ToLower(input.Email)

		if _, err := st.AdminByEmail(c.Request.Context(), email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		} else if !apperr.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}

		admin := models.Admin{
			Name:     strings.TrimSpace(input.Name),
			Email:    email,
			Password: string(hashed),
		}
		if err := st.CreateAdmin(c.Request.Context(), &admin); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Admin registered successfully"})
	}
}

// POST /admin/login
func AdminLogin(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		admin, err := st.AdminByEmail(c.Request.Context(), strings.ToLower(input.Email))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password."})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password."})
			return
		}

		token, err := MintAdminToken(admin)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		setAuthCookie(c, token, adminTokenTTL)
		c.JSON(http.StatusOK, gin.H{"message": "Admin login successful"})
	}
}

// POST /admin/logout
func AdminLogout() gin.HandlerFunc {
	return func(c *gin.Context) {
		clearAuthCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// GET /admin/me
func AdminMe(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := c.GetUint("admin_id")
		admin, err := st.Admin(c.Request.Context(), adminID)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err)})
			return
		}
		c.JSON(http.StatusOK, admin)
	}
}
