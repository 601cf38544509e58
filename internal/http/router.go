package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "tourbooking/internal/config"
	h "tourbooking/internal/http/handlers"
	"tourbooking/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret([]byte(env.JWTSecret))
	h.SetCartConfig(env.CheckoutBaseURL, env.CartPollInterval)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(),
		middleware.Auth([]byte(env.JWTSecret)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Catalog (public)
		tours := api.Group("/tours")
		tours.GET("", h.GetTours)
		tours.GET("/:id", h.GetTourByID)
		tours.GET("/:id/ratings", h.GetTourRatings)
		tours.POST("/:id/ratings", middleware.RequireAuth(), h.CreateTourRating)

		blogs := api.Group("/blogs")
		blogs.GET("", h.GetBlogs)
		blogs.GET("/:id", h.GetBlogByID)

		api.GET("/activity-types", h.GetActivityTypes)

		// Cart & shared booking state (signed-in users)
		cart := api.Group("/cart", middleware.RequireAuth())
		cart.GET("", h.GetCart)
		cart.GET("/stream", h.CartStream)
		cart.POST("/items", h.AddCartItem)
		cart.POST("/items/partial", h.AddPartialCartItem)
		cart.PUT("/items/:id", h.UpdateCartItem)
		cart.DELETE("/items/:id", h.DeleteCartItem)
		cart.GET("/items/:id/invoice", h.GetCartInvoice)
		cart.POST("/resolve-action", h.ResolveCartAction)

		state := api.Group("/booking-state", middleware.RequireAuth())
		state.GET("", h.GetBookingState)
		state.PUT("", h.UpdateBookingState)
		state.DELETE("", h.ResetBookingState)

		checkout := api.Group("/checkout", middleware.RequireAuth())
		checkout.POST("/direct", h.DirectCheckout)
		checkout.POST("/tour/:id", h.TourCheckout)

		// Admin
		admin := api.Group("/admin", middleware.RequireAdmin())
		admin.POST("/tours", h.CreateTour)
		admin.PUT("/tours/:id", h.UpdateTour)
		admin.DELETE("/tours/:id", h.DeleteTour)
		admin.POST("/blogs", h.CreateBlog)
		admin.PUT("/blogs/:id", h.UpdateBlog)
		admin.DELETE("/blogs/:id", h.DeleteBlog)
		admin.PUT("/activity-types/:id", h.UpsertActivityType)
		admin.DELETE("/activity-types/:id", h.DeleteActivityType)
		admin.DELETE("/ratings/:id", h.DeleteRating)
	}

	h.SetRouter(r)
	return r
}
