package auth_controller

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/cart"
	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/events"
)

var (
	notifier *events.Notifier
	registry *cart.Registry
)

func Init(n *events.Notifier, r *cart.Registry) {
	notifier = n
	registry = r
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, url.QueryEscape(errorMsg))
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
