package controllers

import (
	"net/http"
	"strconv"

	"techmart-backend/common/logger"
	"techmart-backend/models"
	"techmart-backend/repository"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductController struct {
	products *repository.ProductRepository
}

func NewProductController(products *repository.ProductRepository) *ProductController {
	return &ProductController{products: products}
}

type productRequest struct {
	Name        string   `json:"name" binding:"required"`
	Slug        string   `json:"slug" binding:"required"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents" binding:"min=0"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock" binding:"min=0"`
}

// GetProducts lists products with optional category filter and paging.
func (pc *ProductController) GetProducts(c *gin.Context) {
	filter := bson.M{}
	if category := c.Query("category"); category != "" {
		catID, err := primitive.ObjectIDFromHex(category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		filter["category"] = catID
	}

	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}

	findOptions := options.Find().
		SetLimit(limit).
		SetSkip((page - 1) * limit).
		SetSort(bson.M{"created_at": -1})

	products, err := pc.products.Find(c.Request.Context(), filter, findOptions)
	if err != nil {
		logger.Error(c, "failed to list products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "page": page, "limit": limit})
}

// GetProductByID fetches one product by id or slug.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	idParam := c.Param("id")

	var product *models.Product
	var err error
	if oid, idErr := primitive.ObjectIDFromHex(idParam); idErr == nil {
		product, err = pc.products.FindByID(c.Request.Context(), oid)
	} else {
		product, err = pc.products.FindBySlug(c.Request.Context(), idParam)
	}

	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	if err != nil {
		logger.Error(c, "failed to fetch product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a catalog entry (admin only).
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Images:      req.Images,
		Stock:       req.Stock,
	}
	if req.Category != "" {
		catID, err := primitive.ObjectIDFromHex(req.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		product.Category = catID
	}

	result, err := pc.products.Create(c.Request.Context(), product)
	if err != nil {
		logger.Error(c, "failed to create product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct patches a catalog entry (admin only).
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var updates bson.M
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	delete(updates, "_id")

	result, err := pc.products.Update(c.Request.Context(), oid, updates)
	if err != nil {
		logger.Error(c, "failed to update product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DeleteProduct soft-deletes a catalog entry (admin only).
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	result, err := pc.products.Delete(c.Request.Context(), oid)
	if err != nil {
		logger.Error(c, "failed to delete product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}
