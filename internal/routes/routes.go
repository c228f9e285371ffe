package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kedaimae/kedai-backend/internal/handler"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	menuHandler *handler.MenuHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	eventHandler *handler.EventHandler,
	communityHandler *handler.CommunityHandler,
	galleryHandler *handler.GalleryHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	wsHandler *handler.WSHandler,
	jwtManager *jwt.Manager,
) {
	// Every API route is session-scoped; auth is optional so guests can
	// browse, order and react under their session identity.
	api := router.Group("/api/v1", middleware.Session(), middleware.OptionalAuth(jwtManager))

	// Menu (public)
	menu := api.Group("/menu")
	menu.GET("", menuHandler.List)
	menu.GET("/categories", menuHandler.Categories)
	menu.GET("/:id", menuHandler.Get)

	// Cart (session)
	cart := api.Group("/cart")
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:id", cartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", cartHandler.RemoveItem)
	cart.POST("/discount", cartHandler.ApplyDiscount)
	cart.DELETE("/discount", cartHandler.RemoveDiscount)

	// Checkout flow (session)
	checkout := api.Group("/checkout")
	checkout.GET("", checkoutHandler.State)
	checkout.DELETE("", checkoutHandler.Abandon)
	checkout.GET("/options", checkoutHandler.Options)
	checkout.POST("/begin", checkoutHandler.Begin)
	checkout.POST("/details", checkoutHandler.SubmitDetails)
	checkout.POST("/promo", checkoutHandler.ApplyPromo)
	checkout.POST("/order", checkoutHandler.PlaceOrder)
	checkout.POST("/back", checkoutHandler.Back)

	// Events and the booking flow (session)
	events := api.Group("/events")
	events.GET("", eventHandler.List)
	events.GET("/categories", eventHandler.Categories)
	events.POST("/booking/details", eventHandler.SubmitBookingDetails)
	events.POST("/booking/confirm", eventHandler.ConfirmBooking)
	events.POST("/booking/back", eventHandler.BookingBack)
	events.DELETE("/booking", eventHandler.CancelBooking)
	events.GET("/:id", eventHandler.Get)
	events.POST("/:id/booking", eventHandler.StartBooking)
	events.POST("/:id/like", eventHandler.Like)

	// Community (session or member)
	community := api.Group("/community")
	community.GET("/posts", communityHandler.ListPosts)
	community.POST("/posts", communityHandler.CreatePost)
	community.POST("/posts/:id/like", communityHandler.LikePost)
	community.POST("/posts/:id/dislike", communityHandler.DislikePost)
	community.GET("/polls", communityHandler.ListPolls)
	community.POST("/polls/:id/vote", communityHandler.Vote)
	community.GET("/showcase", communityHandler.ListShowcase)
	community.POST("/showcase/:id/like", communityHandler.LikeShowcase)
	community.GET("/categories", communityHandler.Categories)

	// Gallery (session or member)
	gallery := api.Group("/gallery")
	gallery.GET("", galleryHandler.List)
	gallery.GET("/categories", galleryHandler.Categories)
	gallery.POST("/:id/like", galleryHandler.Like)

	// Authentication
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	// Profile (auth required)
	profile := api.Group("/profile", middleware.JWTAuth(jwtManager))
	profile.GET("", authHandler.Profile)
	profile.PUT("", authHandler.UpdateProfile)
	profile.GET("/orders", authHandler.Orders)
	profile.POST("/favorites/:id", authHandler.ToggleFavorite)

	// Back office (admin only)
	admin := api.Group("/admin", middleware.JWTAuth(jwtManager), middleware.RequireAdmin())
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/orders", adminHandler.ListOrders)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/orders/:number/status", adminHandler.UpdateOrderStatus)
	admin.PUT("/menu/:id/availability", adminHandler.ToggleAvailability)
	admin.GET("/promotions", adminHandler.Promotions)
	admin.PUT("/promotions/:code", adminHandler.TogglePromotion)

	// Real-time notifications (session)
	router.GET("/ws/notifications", middleware.Session(), wsHandler.Connect)
}
