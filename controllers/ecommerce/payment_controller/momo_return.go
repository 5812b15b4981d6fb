package payment_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
)

var (
	paymentService *services.PaymentService
	store          *adminstore.Store
)

func Init(service *services.PaymentService, s *adminstore.Store) {
	paymentService = service
	store = s
}

// firstQuery walks the known spellings a gateway redirect may use for
// one parameter and returns the first non-empty value.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}

// MomoReturn godoc
// @Summary MoMo payment redirect return
// @Description Handles the browser redirect back from the MoMo gateway: verifies the payment status upstream, stashes the one-shot result for the storefront to pick up, then redirects to the frontend.
// @Tags payments
// @Produce json
// @Param orderId query string true "Order ID (also accepted as partnerOrderId / order_id)"
// @Param resultCode query string true "Gateway result code (also accepted as result_code / status)"
// @Success 307 "Redirect to frontend payment result page"
// @Router /api/v1/payments/momo/return [get]
func MomoReturn(c *gin.Context) {
	// The gateway is inconsistent about parameter names across flows.
	orderID := firstQuery(c, "orderId", "partnerOrderId", "order_id")
	requestID := firstQuery(c, "requestId", "request_id", "requestid")
	resultCode := firstQuery(c, "resultCode", "result_code", "status")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := map[string]any{
		"orderId":    orderID,
		"requestId":  requestID,
		"resultCode": resultCode,
	}
	if orderID != "" {
		check, err := paymentService.CheckStatus(ctx, orderID, resultCode)
		if err != nil {
			log.Printf("[payments.momo] ⚠️ status check failed for order %s: %v", orderID, err)
			result["checkError"] = err.Error()
		} else {
			result["status"] = check
		}
	}

	if err := store.SavePaymentResult(ctx, result); err != nil {
		log.Printf("[payments.momo] ⚠️ could not stash redirect result: %v", err)
	}

	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/payment/result")
}

// GetPaymentResult godoc
// @Summary Consume the pending payment result
// @Description Returns the stashed MoMo redirect result exactly once; a second call finds nothing.
// @Tags payments
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /api/v1/payments/momo/result [get]
func GetPaymentResult(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, found, err := store.TakePaymentResult(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Could not read payment result"))
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No pending payment result"))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Payment result consumed", result))
}
