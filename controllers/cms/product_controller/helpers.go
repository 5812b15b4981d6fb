package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/services"
)

var (
	store             *adminstore.Store
	cloudinaryService *services.CloudinaryService
	cloudUpload       *services.CloudUploadService
)

func Init(s *adminstore.Store, cloudinary *services.CloudinaryService, upload *services.CloudUploadService) {
	store = s
	cloudinaryService = cloudinary
	cloudUpload = upload
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}
