package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stepkart/stepkart-golang/internal/handlers"
	"github.com/stepkart/stepkart-golang/internal/metrics"
	"github.com/stepkart/stepkart-golang/internal/middleware"
)

// CORSMiddleware tells the browser the dashboard origin may talk to us.
func CORSMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight requests get an empty 204 and stop here.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware("http://localhost:5173"))
	router.Use(metrics.Middleware())

	// Uploaded files are served straight off the local disk.
	router.Static("/uploads", h.Cfg.UploadDir)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/api")
	{
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})

		// --- Auth Routes ---
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register-retailer", h.RegisterRetailer)
			authGroup.GET("/user/:id", h.GetUserByID)
			authGroup.POST("/login", h.Login)
		}

		// --- Banner Routes ---
		banners := api.Group("/banners")
		{
			banners.GET("", h.GetBanners)
			banners.POST("",
				middleware.AuthMiddleware(),
				middleware.RequireRoles(h.DB, "admin", "seller"),
				h.AddBanner)
			banners.PUT("/:id",
				middleware.AuthMiddleware(),
				middleware.RequireRoles(h.DB, "admin", "seller"),
				h.UpdateBanner)
			banners.PUT("/:id/status",
				middleware.AuthMiddleware(),
				middleware.RequireRoles(h.DB, "admin", "seller"),
				h.UpdateBannerStatus)
			banners.PUT("/reorder/save",
				middleware.AuthMiddleware(),
				middleware.RequireRoles(h.DB, "admin"),
				h.UpdateBannerOrder)
			banners.DELETE("/:id",
				middleware.AuthMiddleware(),
				middleware.RequireRoles(h.DB, "admin"),
				h.DeleteBanner)
		}

		// --- Coupon Routes ---
		coupons := api.Group("/coupons")
		{
			coupons.GET("", h.GetCoupons)
			coupons.POST("", h.CreateCoupon)
			coupons.PUT("/:id", h.UpdateCoupon)
			coupons.DELETE("/:id", h.DeleteCoupon)
		}

		// --- Product Routes (Login Required) ---
		products := api.Group("/products")
		products.Use(middleware.AuthMiddleware())
		{
			products.POST("/add", h.AddProduct)
			products.GET("/my", h.GetMyProducts)
		}

		// --- Seller Routes ---
		sellers := api.Group("/sellers")
		{
			sellers.POST("", h.CreateSeller)
			sellers.GET("", h.GetSellers)
			sellers.PUT("/:id", h.UpdateSeller)
			sellers.DELETE("/:id", h.DeleteSeller)
			sellers.PUT("/:id/status", h.UpdateSellerActiveStatus)
			sellers.PUT("/:id/approve", h.ApproveSeller)
		}
	}

	return router
}
