package cart_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/cart"
	"github.com/bavien2005/AntaShop-Website/events"
	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/services"
)

var (
	registry *cart.Registry
	notifier *events.Notifier
)

func Init(r *cart.Registry, n *events.Notifier) {
	registry = r
	notifier = n
}

// managerFor resolves the cart manager owning this request's session,
// applying the authenticated identity when present. Returns nil after
// writing the error response.
func managerFor(c *gin.Context) *cart.Manager {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing session"))
		return nil
	}

	manager := registry.Acquire(sessionID)
	if userID, ok := middleware.GetUserIDFromContext(c); ok {
		// Runs the merge protocol at most once per login.
		manager.Authenticate(c.Request.Context(), userID)
	}
	return manager
}

// writeUpstreamError maps a cart-service failure to a response. An
// upstream 401 broadcasts a logout for the session, then rotates the
// session cookie, before answering 401.
func writeUpstreamError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrUnauthorized) {
		if sessionID, ok := middleware.GetSessionIDFromContext(c); ok && notifier != nil {
			manager := registry.Acquire(sessionID)
			notifier.NotifyLogout(sessionID)
			if newID := manager.SessionID(); newID != sessionID {
				middleware.SetSessionCookie(c, newID)
			}
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Session expired"))
		return
	}
	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, fallback))
}

func cartPayload(manager *cart.Manager, c models.Cart) gin.H {
	return gin.H{
		"cart":       c,
		"totalItems": manager.TotalItems(),
		"totalPrice": manager.TotalPrice(),
	}
}
