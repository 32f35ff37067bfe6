package productcontroller

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopnest/storefront-api/apperr"
	"github.com/shopnest/storefront-api/models"
)

// CatalogStore is the catalog persistence these handlers need; the gorm
// store satisfies it.
type CatalogStore interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id uint) (*models.Product, error)
	SaveProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

type CreateProductInput struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Description string   `json:"description"`
}

type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

// POST /products (admin)
func CreateProduct(st CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		if *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Price:       *input.Price,
			Image:       input.Image,
			Description: input.Description,
		}
		if err := st.CreateProduct(c.Request.Context(), &product); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product": product})
	}
}

// GET /products
func GetProducts(st CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := st.Products(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(st CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		product, err := st.Product(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// PUT /products/:id (admin)
func UpdateProduct(st CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.Price != nil && *input.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a non-negative number"})
			return
		}

		product, err := st.Product(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if err := st.SaveProduct(c.Request.Context(), product); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
	}
}

// DELETE /products/:id (admin)
func DeleteProduct(st CatalogStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		if err := st.DeleteProduct(c.Request.Context(), id); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return 0, false
	}
	return uint(id), true
}

func writeError(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), gin.H{"error": apperr.Message(err), "code": apperr.KindOf(err).String()})
}
