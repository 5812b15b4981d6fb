package order_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
)

var store *adminstore.Store

func Init(s *adminstore.Store) {
	store = s
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}
