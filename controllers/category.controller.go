package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"genzshop-backend/models"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// uploadCategoryImage uploads an inline base64 image and returns its URL.
// Values that are already URLs pass through.
func (ctrl *Controller) uploadCategoryImage(image, folder string) (string, error) {
	if !strings.HasPrefix(image, "data:") || ctrl.Cld == nil {
		return image, nil
	}
	result, err := ctrl.Cld.Upload.Upload(
		context.Background(),
		image,
		uploader.UploadParams{Folder: folder},
	)
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}

// GetCategories returns all categories, newest first.
func (ctrl *Controller) GetCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	collection := ctrl.DB.Collection("categories")
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// GetActiveCategories returns only the categories visible on the storefront.
func (ctrl *Controller) GetActiveCategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("categories")
	cursor, err := collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// CreateCategory stores a new category.
func (ctrl *Controller) CreateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := ctrl.uploadCategoryImage(category.Image, "genzshop/categories")
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	category.Image = image

	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	collection := ctrl.DB.Collection("categories")
	result, err := collection.InsertOne(ctx, category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	category.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": category})
}

// UpdateCategory replaces a category's fields. Subcategories keep their own
// denormalized categoryName until their next save; the admin re-saves them
// through the subcategory endpoints.
func (ctrl *Controller) UpdateCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var updateData models.Category
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := ctrl.uploadCategoryImage(updateData.Image, "genzshop/categories")
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	updateData.Image = image
	updateData.UpdatedAt = time.Now()

	collection := ctrl.DB.Collection("categories")
	update := bson.M{"$set": bson.M{
		"name":      updateData.Name,
		"image":     updateData.Image,
		"link":      updateData.Link,
		"active":    updateData.Active,
		"updatedAt": updateData.UpdatedAt,
	}}
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated successfully"})
}

// DeleteCategory removes a category without touching its subcategories or
// the products naming it. Those references become dangling display data;
// the admin warns before deleting and this handler performs no pre-delete
// validation on purpose.
func (ctrl *Controller) DeleteCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	collection := ctrl.DB.Collection("categories")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}

// findCategories loads the full category list for name/id resolution.
func (ctrl *Controller) findCategories(ctx context.Context) ([]models.Category, error) {
	cursor, err := ctrl.DB.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// findCategoryByID loads one category, distinguishing missing from failed.
func (ctrl *Controller) findCategoryByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	var category models.Category
	err := ctrl.DB.Collection("categories").FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
