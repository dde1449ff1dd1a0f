package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"genzshop-backend/catalog"
	"genzshop-backend/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// resolveCategoryName recomputes the denormalized categoryName from the
// referenced category so a stale form payload can never desync it. A
// dangling categoryId resolves to "".
func (ctrl *Controller) resolveCategoryName(ctx context.Context, sub *models.Subcategory) error {
	sub.CategoryName = ""
	if sub.CategoryID.IsZero() {
		return nil
	}
	category, err := ctrl.findCategoryByID(ctx, sub.CategoryID)
	if err != nil {
		return err
	}
	if category != nil {
		sub.CategoryName = category.Name
	}
	return nil
}

// GetSubcategories returns all subcategories, newest first.
func (ctrl *Controller) GetSubcategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	collection := ctrl.DB.Collection("subcategories")
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var subcategories []models.Subcategory
	if err = cursor.All(ctx, &subcategories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": subcategories})
}

// GetActiveSubcategories returns only the active subcategories.
func (ctrl *Controller) GetActiveSubcategories(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := ctrl.DB.Collection("subcategories")
	cursor, err := collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var subcategories []models.Subcategory
	if err = cursor.All(ctx, &subcategories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": subcategories})
}

// GetSubcategoriesByCategory returns the direct children of a category id.
func (ctrl *Controller) GetSubcategoriesByCategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("categoryId")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	collection := ctrl.DB.Collection("subcategories")
	cursor, err := collection.Find(ctx, bson.M{"categoryId": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var subcategories []models.Subcategory
	if err = cursor.All(ctx, &subcategories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": subcategories})
}

// GetSubcategoriesByCategoryName backs the product edit form, which binds
// categories by name. An unknown name returns an empty list, not an error.
func (ctrl *Controller) GetSubcategoriesByCategoryName(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	name := c.Param("name")

	categories, err := ctrl.findCategories(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cursor, err := ctrl.DB.Collection("subcategories").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var subcategories []models.Subcategory
	if err = cursor.All(ctx, &subcategories); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	children := catalog.SubcategoriesForCategoryName(name, categories, subcategories)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": children})
}

// CreateSubcategory stores a new subcategory under its parent category.
func (ctrl *Controller) CreateSubcategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var subcategory models.Subcategory
	if err := c.ShouldBindJSON(&subcategory); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.resolveCategoryName(ctx, &subcategory); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	image, err := ctrl.uploadCategoryImage(subcategory.Image, "genzshop/subcategories")
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	subcategory.Image = image

	subcategory.CreatedAt = time.Now()
	subcategory.UpdatedAt = time.Now()

	collection := ctrl.DB.Collection("subcategories")
	result, err := collection.InsertOne(ctx, subcategory)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	subcategory.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": subcategory})
}

// UpdateSubcategory replaces a subcategory's fields, recomputing the
// denormalized categoryName from the referenced category.
func (ctrl *Controller) UpdateSubcategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	var updateData models.Subcategory
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.resolveCategoryName(ctx, &updateData); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	image, err := ctrl.uploadCategoryImage(updateData.Image, "genzshop/subcategories")
	if err != nil {
		log.Println("Cloudinary upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}
	updateData.Image = image
	updateData.UpdatedAt = time.Now()

	collection := ctrl.DB.Collection("subcategories")
	update := bson.M{"$set": bson.M{
		"name":         updateData.Name,
		"categoryId":   updateData.CategoryID,
		"categoryName": updateData.CategoryName,
		"image":        updateData.Image,
		"active":       updateData.Active,
		"updatedAt":    updateData.UpdatedAt,
	}}
	result, err := collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subcategory updated successfully"})
}

// DeleteSubcategory removes a subcategory.
func (ctrl *Controller) DeleteSubcategory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := c.Param("id")
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subcategory ID"})
		return
	}

	collection := ctrl.DB.Collection("subcategories")
	result, err := collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subcategory not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subcategory deleted successfully"})
}
