package routes

import (
	"net/http"

	"genzshop-backend/controllers"
	"genzshop-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	auth := middleware.RequireAuth(ctrl.PasetoSecretKey)

	api := r.Group("/api")
	{
		// Utility routes
		api.GET("/health", ctrl.HealthCheck)
		api.GET("/stats", ctrl.GetStats)

		// Authentication
		api.POST("/auth/login", ctrl.Login)
		api.POST("/auth/register", ctrl.Register)
		api.GET("/auth/profile", auth, ctrl.GetProfile)

		// Products (reads are public, writes require an admin token)
		api.GET("/products", ctrl.GetProducts)
		api.GET("/products/search", ctrl.SearchProducts)
		api.GET("/products/category/:name", ctrl.GetProductsByCategory)
		api.GET("/products/:id", ctrl.GetProduct)
		api.POST("/products", auth, ctrl.CreateProduct)
		api.PUT("/products/:id", auth, ctrl.UpdateProduct)
		api.DELETE("/products/:id", auth, ctrl.DeleteProduct)

		// Orders (checkout is public, management is admin-only)
		api.POST("/orders", ctrl.CreateOrder)
		api.GET("/orders", ctrl.GetOrders)
		api.GET("/orders/user", ctrl.GetUserOrders)
		api.GET("/orders/:id", ctrl.GetOrder)
		api.PUT("/orders/:id", auth, ctrl.UpdateOrderStatus)

		// Categories
		api.GET("/categories", ctrl.GetCategories)
		api.GET("/categories/active", ctrl.GetActiveCategories)
		api.POST("/categories", auth, ctrl.CreateCategory)
		api.PUT("/categories/:id", auth, ctrl.UpdateCategory)
		api.DELETE("/categories/:id", auth, ctrl.DeleteCategory)

		// Subcategories
		api.GET("/subcategories", ctrl.GetSubcategories)
		api.GET("/subcategories/active", ctrl.GetActiveSubcategories)
		api.GET("/subcategories/category/:categoryId", ctrl.GetSubcategoriesByCategory)
		api.GET("/subcategories/by-category-name/:name", ctrl.GetSubcategoriesByCategoryName)
		api.POST("/subcategories", auth, ctrl.CreateSubcategory)
		api.PUT("/subcategories/:id", auth, ctrl.UpdateSubcategory)
		api.DELETE("/subcategories/:id", auth, ctrl.DeleteSubcategory)

		// Admin analytics
		api.GET("/dashboard", auth, ctrl.GetDashboard)
		api.GET("/customers", auth, ctrl.GetCustomers)
		api.GET("/customers/:email", auth, ctrl.GetCustomer)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
	return r
}
