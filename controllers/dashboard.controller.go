package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"genzshop-backend/analytics"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetDashboard builds the admin dashboard in one response: the analytics
// snapshot, the five most recent orders, the top products by revenue and
// the activity feed. A failed order read is the only fatal case; a failed
// product read degrades to counting distinct productIds from the orders.
func (ctrl *Controller) GetDashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := ctrl.findOrdersNewestFirst(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load analytics"})
		return
	}

	productCount, perr := ctrl.productCount(ctx)
	if perr != nil {
		log.Println("Product count unavailable, deriving from orders:", perr)
	}

	summary := analytics.Summarize(orders)
	snapshot := analytics.SnapshotFrom(summary, orders, productCount, perr == nil)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"stats":          snapshot,
		"statusCounts":   summary.StatusCounts,
		"recentOrders":   analytics.RecentOrders(orders),
		"topProducts":    analytics.TopProducts(orders, 5),
		"recentActivity": analytics.RecentActivity(orders),
	})
}
