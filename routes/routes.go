package routes

import (
	"net/http"

	"vastra/analytics"
	"vastra/auth"
	"vastra/cart"
	"vastra/heroslides"
	"vastra/middleware"
	"vastra/orders"
	"vastra/products"
	"vastra/ratelim"
	"vastra/tryon"
	"vastra/users"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/send-otp", rl.Limit(auth.SendOTP))
	router.POST("/api/auth/verify-otp", rl.Limit(auth.VerifyOTP))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", rl.Limit(middleware.Authenticate(auth.RefreshToken)))
}

func AddCartRoutes(router *httprouter.Router) {
	router.GET("/api/cart", middleware.Authenticate(cart.GetCart))
	router.POST("/api/cart", middleware.Authenticate(cart.AddToCart))
	router.POST("/api/cart/update", middleware.Authenticate(cart.UpdateCart))
	router.POST("/api/cart/remove", middleware.Authenticate(cart.RemoveFromCart))
	router.DELETE("/api/cart", middleware.Authenticate(cart.Clear))
}

func AddOrderRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/orders", rl.Limit(middleware.Authenticate(orders.PlaceOrder)))
	router.GET("/api/orders", middleware.Authenticate(orders.GetOrders))
	router.GET("/api/orders/:orderid", middleware.Authenticate(orders.GetOrder))
	router.PATCH("/api/orders/:orderid", middleware.AdminOnly(orders.UpdateOrder))
	router.GET("/api/orders/:orderid/invoice", middleware.Authenticate(orders.Invoice))
	router.GET("/api/orders/:orderid/updates", orders.OrderUpdates)
}

func AddProductRoutes(router *httprouter.Router) {
	router.GET("/api/products", products.GetProducts)
	router.GET("/api/products/:productid", products.GetProduct)
	router.GET("/api/categories", products.GetCategories)
	router.POST("/api/products", middleware.AdminOnly(products.CreateProduct))
	router.PUT("/api/products/:productid", middleware.AdminOnly(products.UpdateProduct))
	router.DELETE("/api/products/:productid", middleware.AdminOnly(products.DeleteProduct))
	router.POST("/api/products/:productid/images", middleware.AdminOnly(products.UploadProductImages))
}

func AddHeroSlideRoutes(router *httprouter.Router) {
	router.GET("/api/hero-slides", middleware.OptionalAuth(heroslides.GetSlides))
	router.POST("/api/hero-slides", middleware.AdminOnly(heroslides.CreateSlide))
	router.PUT("/api/hero-slides/:slideid", middleware.AdminOnly(heroslides.UpdateSlide))
	router.DELETE("/api/hero-slides/:slideid", middleware.AdminOnly(heroslides.DeleteSlide))
	router.POST("/api/hero-slides/reorder", middleware.AdminOnly(heroslides.ReorderSlides))
	router.POST("/api/hero-slides/seed", middleware.AdminOnly(heroslides.SeedSlides))
}

func AddUserRoutes(router *httprouter.Router) {
	router.GET("/api/users", middleware.AdminOnly(users.GetUsers))
	router.POST("/api/users/bulk-email", middleware.AdminOnly(users.BulkEmail))
	router.GET("/api/profile", middleware.Authenticate(users.GetProfile))
	router.PUT("/api/profile", middleware.Authenticate(users.UpdateProfile))
}

func AddTryOnRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/tryon", rl.Limit(middleware.Authenticate(tryon.TryOn)))
}

func AddAnalyticsRoutes(router *httprouter.Router) {
	router.POST("/api/analytics/log", middleware.OptionalAuth(analytics.LogEvents))
	router.GET("/api/analytics/summary", middleware.AdminOnly(analytics.Summary))
}
