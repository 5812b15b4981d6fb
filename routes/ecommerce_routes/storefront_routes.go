package ecommerce_routes

import (
	store_product "github.com/bavien2005/AntaShop-Website/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStoreProducts)        // List with filters
		products.GET("/search", store_product.SearchStoreProducts)
		products.GET("/:id", store_product.GetStoreProductByID) // Single product
	}
}
