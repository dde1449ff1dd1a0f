package controllers

import (
	"context"
	"net/http"
	"time"

	"genzshop-backend/analytics"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetCustomers returns the customer directory derived from the order
// stream. Nothing is persisted; the roll-up is rebuilt on every call.
// An optional ?search= narrows by name or email substring.
func (ctrl *Controller) GetCustomers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	orders, err := ctrl.findOrdersNewestFirst(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load customers"})
		return
	}

	customers := analytics.BuildCustomers(orders)
	customers = analytics.FilterCustomers(customers, c.Query("search"))

	totalSpent := 0.0
	for _, customer := range customers {
		totalSpent += customer.TotalSpent
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"customers": customers,
		"total":     len(customers),
		"revenue":   totalSpent,
	})
}

// GetCustomer returns one customer's roll-up with the order history sorted
// newest first for the detail view.
func (ctrl *Controller) GetCustomer(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email := c.Param("email")

	orders, err := ctrl.findOrdersNewestFirst(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load customers"})
		return
	}

	for _, customer := range analytics.BuildCustomers(orders) {
		if customer.Email == email {
			customer.Orders = customer.History()
			c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Customer not found"})
}
