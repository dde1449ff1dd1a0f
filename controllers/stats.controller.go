package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// HealthCheck reports the database connection status.
func (ctrl *Controller) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := ctrl.DB.Client().Ping(ctx, nil)
	dbStatus := "connected"
	if err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Unix(),
	})
}

// GetStats returns catalog-level counters: collection sizes and the total
// inventory value (price * stock summed server-side).
func (ctrl *Controller) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	productsCollection := ctrl.DB.Collection("products")

	totalProducts, _ := productsCollection.CountDocuments(ctx, bson.M{})
	totalCategories, _ := ctrl.DB.Collection("categories").CountDocuments(ctx, bson.M{})
	totalSubcategories, _ := ctrl.DB.Collection("subcategories").CountDocuments(ctx, bson.M{})
	totalOrders, _ := ctrl.DB.Collection("orders").CountDocuments(ctx, bson.M{})

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$multiply": []string{"$price", "$stock"}}},
		}},
	}
	cursor, err := productsCollection.Aggregate(ctx, pipeline)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer cursor.Close(ctx)

	var result []bson.M
	var inventoryValue float64
	if err := cursor.All(ctx, &result); err == nil && len(result) > 0 {
		if val, ok := result[0]["total"].(float64); ok {
			inventoryValue = val
		}
	}

	c.JSON(http.StatusOK, gin.H{"stats": gin.H{
		"totalProducts":      totalProducts,
		"totalCategories":    totalCategories,
		"totalSubcategories": totalSubcategories,
		"totalOrders":        totalOrders,
		"inventoryValue":     inventoryValue,
	}})
}
