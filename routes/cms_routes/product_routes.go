package cms_routes

import (
	"github.com/bavien2005/AntaShop-Website/controllers/cms/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	{
		product.GET("", product_controller.GetProducts)
		product.GET("/stats", product_controller.GetProductStats)
		product.GET("/:id", product_controller.GetProductByID)

		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)
	}

	rg.POST("/uploads", product_controller.UploadImages)
}
