package analytics_controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetMonthlyRevenue godoc
// @Summary Revenue per month for one year
// @Tags CMS - Analytics
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid year"))
			return
		}
		year = parsed
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	series := store.MonthlyRevenue(ctx, year)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue fetched successfully", gin.H{
		"year": year,
		"data": series,
	}))
}
