package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/A3K3SH/Catering/configs"
	"github.com/A3K3SH/Catering/controllers"
	"github.com/A3K3SH/Catering/middlewares"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.Sessions(db))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	categoryCtrl := controllers.NewCategoryController(db)
	productCtrl := controllers.NewProductController(db)
	orderCtrl := controllers.NewOrderController(db)
	contactCtrl := controllers.NewContactController(db)
	testimonialCtrl := controllers.NewTestimonialController(db)

	api := r.Group("/api")

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.POST("/logout", authCtrl.Logout)
		auth.GET("/status", authCtrl.Status)
	}

	// Storefront (public)
	api.GET("/categories", categoryCtrl.List)
	api.GET("/products", productCtrl.List)
	api.GET("/products/:id", productCtrl.Detail)
	api.POST("/orders", orderCtrl.Create)
	api.POST("/contact", contactCtrl.Create)
	api.GET("/testimonials", testimonialCtrl.List)

	// Back-office (admin only)
	admin := api.Group("", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/categories", categoryCtrl.Create)
		admin.PATCH("/categories/:id", categoryCtrl.Update)
		admin.DELETE("/categories/:id", categoryCtrl.Delete)

		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)

		admin.GET("/orders", orderCtrl.List)
		admin.GET("/orders/:id", orderCtrl.Detail)

		admin.GET("/contact", contactCtrl.List)

		admin.POST("/testimonials", testimonialCtrl.Create)
		admin.PATCH("/testimonials/:id/visibility", testimonialCtrl.SetVisibility)
		admin.DELETE("/testimonials/:id", testimonialCtrl.Delete)
	}
}
