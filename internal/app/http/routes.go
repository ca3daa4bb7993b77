package routes

import (
	adminapi "artisan-backend/internal/api/admin"
	authapi "artisan-backend/internal/api/auth"
	couponsapi "artisan-backend/internal/api/coupons"
	ordersapi "artisan-backend/internal/api/orders"
	paintingsapi "artisan-backend/internal/api/paintings"
	paymentsapi "artisan-backend/internal/api/payments"
	razorpayapi "artisan-backend/internal/api/razorpay"
	usersapi "artisan-backend/internal/api/users"
	"artisan-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Catalogue browsing is public
	api.GET("/paintings", paintingsapi.ListPaintings)
	api.GET("/paintings/:id", paintingsapi.GetPainting)

	public := api.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/users/register", authapi.Register)
	public.POST("/users/login", authapi.Login)

	// Authenticated storefront
	auth := api.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/users/profile", usersapi.GetProfile)

	auth.POST("/coupons/validate", couponsapi.ValidateCoupon)
	auth.POST("/coupons/use/:code", couponsapi.UseCoupon)

	// /myorders must register before /:id
	auth.GET("/orders/myorders", ordersapi.ListMyOrders)
	auth.POST("/orders", middleware.SanitizeAndCleanInputMiddleware(), ordersapi.CreateOrder)
	auth.GET("/orders/:id", ordersapi.GetOrder)

	auth.POST("/razorpay/create-order", razorpayapi.CreateOrder)
	auth.POST("/razorpay/verify-payment", razorpayapi.VerifyPayment)
	auth.GET("/razorpay/payment/:paymentId", razorpayapi.GetPayment)

	auth.POST("/payments/create-checkout-session", paymentsapi.CreateCheckoutSession)

	// Admin
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/admin/dashboard", adminapi.AdminDashboard)
	admin.GET("/admin/stats", adminapi.GetAdminStats)

	admin.POST("/paintings", paintingsapi.CreatePainting)
	admin.PUT("/paintings/:id", paintingsapi.UpdatePainting)
	admin.DELETE("/paintings/:id", paintingsapi.DeletePainting)

	admin.POST("/coupons", couponsapi.CreateCoupon)
	admin.GET("/coupons", couponsapi.ListCoupons)
	admin.PUT("/coupons/:id", couponsapi.UpdateCoupon)
	admin.DELETE("/coupons/:id", couponsapi.DeleteCoupon)

	admin.GET("/orders", ordersapi.ListOrders)
	admin.PUT("/orders/:id/pay", ordersapi.PayOrder)
	admin.PUT("/orders/:id/deliver", ordersapi.DeliverOrder)
	admin.PUT("/orders/:id/tracking", ordersapi.UpdateTracking)
}
