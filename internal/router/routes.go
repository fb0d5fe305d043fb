package router

import "github.com/gin-gonic/gin"

func (api *API) RegisterRoutes(engine *gin.Engine) {
	root := engine.Group("/api")
	{
		root.GET("/health", api.HealthCheck)

		auth := root.Group("/auth")
		{
			auth.POST("/login", api.Login)
			auth.POST("/logout", api.Logout)
			auth.GET("/session", api.GetSession)
		}

		products := root.Group("/products")
		{
			products.GET("/", api.GetAllProducts)
			products.GET("/:slug", api.GetProductBySlug)
			products.POST("/", api.RequireElevatedAccess(), api.CreateNewProducts)
			products.PUT("/:slug", api.RequireElevatedAccess(), api.EditProductBySlug)
			products.DELETE("/:slug", api.RequireElevatedAccess(), api.DeleteProductBySlug)
		}

		categories := root.Group("/categories")
		{
			categories.GET("/", api.GetAllCategories)
		}

		cart := root.Group("/cart")
		{
			cart.GET("/:sessionId", api.GetCart)
			cart.POST("/:sessionId/items", api.AddToCart)
			cart.PUT("/:sessionId/items/:productId", api.UpdateCartItem)
			cart.DELETE("/:sessionId/items/:productId", api.RemoveFromCart)
			cart.DELETE("/:sessionId/clear", api.ClearCart)
		}

		wishlist := root.Group("/wishlist")
		{
			wishlist.GET("/:sessionId", api.GetWishlist)
			wishlist.GET("/:sessionId/contains/:id", api.CheckWishlist)
			wishlist.POST("/:sessionId/items", api.AddToWishlist)
			wishlist.DELETE("/:sessionId/items/:id", api.RemoveFromWishlist)
			wishlist.DELETE("/:sessionId/clear", api.ClearWishlist)
		}

		admin := root.Group("/admin")
		admin.Use(api.RequireElevatedAccess())
		{
			admin.GET("/insights", api.GetShoppingInsights)
		}
	}
}
