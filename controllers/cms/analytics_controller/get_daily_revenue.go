package analytics_controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
)

// GetDailyRevenue godoc
// @Summary Revenue per day for one month
// @Tags CMS - Analytics
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} models.ApiResponse
// @Router /api/v1/admin/analytics/daily-revenue [get]
func GetDailyRevenue(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	month := now.Month()

	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid year"))
			return
		}
		year = parsed
	}
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid month"))
			return
		}
		month = time.Month(parsed)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	series := store.DailyRevenue(ctx, year, month)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Daily revenue fetched successfully", gin.H{
		"year":  year,
		"month": int(month),
		"data":  series,
	}))
}
