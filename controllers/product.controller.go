// File: controllers/product.controller.go
package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"genzshop-backend/catalog"
	"genzshop-backend/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxProductImages = 4

// uploadImages pushes base64 data URIs to Cloudinary and returns the stored
// URLs. Entries that are already URLs pass through untouched.
func (ctrl *Controller) uploadImages(images []string, folder string) ([]string, error) {
	uploaded := make([]string, 0, len(images))
	for _, img := range images {
		if !strings.HasPrefix(img, "data:") || ctrl.Cld == nil {
			uploaded = append(uploaded, img)
			continue
		}
		result, err := ctrl.Cld.Upload.Upload(
			context.Background(),
			img,
			uploader.UploadParams{Folder: folder},
		)
		if err != nil {
			return nil, err
		}
		uploaded = append(uploaded, result.SecureURL)
	}
	return uploaded, nil
}

// GetProducts returns the whole catalog.
func (ctrl *Controller) GetProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": productList})
}

// GetProductsByCategory returns the products referencing the category name.
// The linkage is by name, so an unknown or deleted category simply matches
// nothing.
func (ctrl *Controller) GetProductsByCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := c.Param("name")
	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, bson.M{"category": name})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": productList})
}

// SearchProducts performs a substring match over name and description.
func (ctrl *Controller) SearchProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	filter := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": query, "$options": "i"}},
		{"description": bson.M{"$regex": query, "$options": "i"}},
	}}

	collection := ctrl.DB.Collection("products")
	cursor, err := collection.Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var productList []models.Product
	if err = cursor.All(ctx, &productList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": productList})
}

// CreateProduct stores a new product, uploading any inline images first.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(product.Images) > maxProductImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 4 images allowed"})
		return
	}

	images, err := ctrl.uploadImages(product.Images, "genzshop/products")
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	product.Images = images

	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	collection := ctrl.DB.Collection("products")
	result, err := collection.InsertOne(ctx, product)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	product.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// GetProduct returns a single product by id.
func (ctrl *Controller) GetProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var product models.Product
	collection := ctrl.DB.Collection("products")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// UpdateProduct replaces a product's editable fields. Moving the product to
// another category clears its subcategory so no reference crosses a
// category boundary.
func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var updateData models.Product
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(updateData.Images) > maxProductImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum 4 images allowed"})
		return
	}

	collection := ctrl.DB.Collection("products")

	var existing models.Product
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	catalog.ApplyCategoryChange(existing, &updateData)

	images, err := ctrl.uploadImages(updateData.Images, "genzshop/products")
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	updateData.Images = images

	updateData.CreatedAt = existing.CreatedAt
	updateData.UpdatedAt = time.Now()
	update := bson.M{"$set": productUpdateDoc(updateData)}

	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	updateData.ID = objectID
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated successfully", "product": updateData})
}

// DeleteProduct removes a product.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	collection := ctrl.DB.Collection("products")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

// productUpdateDoc builds the $set document for a product update. The keys
// are listed explicitly rather than marshalling the struct, whose omitempty
// tags would drop cleared values -- an empty subcategory after a category
// change must still overwrite what is stored.
func productUpdateDoc(p models.Product) bson.M {
	return bson.M{
		"name":         p.Name,
		"description":  p.Description,
		"price":        p.Price,
		"salePrice":    p.SalePrice,
		"stock":        p.Stock,
		"category":     p.Category,
		"subcategory":  p.Subcategory,
		"collection":   p.Collection,
		"fabric":       p.Fabric,
		"colors":       p.Colors,
		"images":       p.Images,
		"isBestseller": p.IsBestseller,
		"updatedAt":    p.UpdatedAt,
	}
}

// productCount is the catalog-size metric for the dashboard.
func (ctrl *Controller) productCount(ctx context.Context) (int, error) {
	count, err := ctrl.DB.Collection("products").CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// findOrdersNewestFirst is the shared order read: matching orders sorted by
// creation time descending, which every derived view assumes.
func (ctrl *Controller) findOrdersNewestFirst(ctx context.Context, filter bson.M) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := ctrl.DB.Collection("orders").Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
