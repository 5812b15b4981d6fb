package product_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

func productImageFolder(productID int64) string {
	return fmt.Sprintf("anta/products/%d", productID)
}

// UploadImages godoc
// @Summary Upload product images
// @Description Uploads to Cloudinary when configured, otherwise proxies to the external cloud-upload service; returns the stored URLs
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Image files (repeatable)"
// @Param productId formData int false "Product the images belong to"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse
// @Router /api/v1/admin/uploads [post]
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid multipart form: "+err.Error()))
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "At least one file is required"))
		return
	}

	ctx, cancel := config.WithCustomTimeout(60 * time.Second)
	defer cancel()

	if cloudinaryService != nil {
		folder := "anta/products"
		if productID, ok := parseFormID(c); ok {
			folder = productImageFolder(productID)
		}
		urls, err := cloudinaryService.UploadMultipleImages(ctx, files, folder)
		if err != nil {
			log.Printf("[cms.uploads] ❌ cloudinary upload failed: %v", err)
			c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Image upload failed"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{"urls": urls}))
		return
	}

	if cloudUpload == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "No upload backend configured"))
		return
	}

	results, err := cloudUpload.UploadMultiple(ctx, files, 0)
	if err != nil {
		log.Printf("[cms.uploads] ❌ cloud upload proxy failed: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Image upload failed"))
		return
	}
	urls := make([]string, 0, len(results))
	for _, r := range results {
		urls = append(urls, r.URL)
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{"urls": urls}))
}

func parseFormID(c *gin.Context) (int64, bool) {
	var input struct {
		ProductID int64 `form:"productId"`
	}
	if err := c.ShouldBind(&input); err != nil || input.ProductID == 0 {
		return 0, false
	}
	return input.ProductID, true
}
