package auth

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
	"github.com/shopnest/storefront-api/store"
)

var namePattern = regexp.MustCompile(`^[A-Za-z\s]+$`)

type RegisterInput struct {
	Name     string         `json:"name" binding:"required"`
	Email    string         `json:"email" binding:"required,email"`
	Password string         `json:"password" binding:"required"`
	Phone    string         `json:"phone"`
	Address  models.Address `json:"address"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /register
func Register(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !namePattern.MatchString(input.Name) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name must only contain letters and spaces!"})
			return
		}

		if _, err := st.UserByEmail(c.Request.Context(), input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already used!"})
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

		user := models.User{
			ID:       uuid.NewString(),
			Name:     input.Name,
			Email:    input.Email,
			Password: string(hashed),
			Phone:    input.Phone,
			Address:  input.Address,
		}
		if err := st.CreateUser(c.Request.Context(), &user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
	}
}

// POST /login
func Login(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := st.UserByEmail(c.Request.Context(), input.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password."})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password."})
			return
		}

		token, err := MintUserToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
			return
		}
		setAuthCookie(c, token, userTokenTTL)
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
		})
	}
}

// POST /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		clearAuthCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}
