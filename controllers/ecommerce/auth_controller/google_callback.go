package auth_controller

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	"github.com/bavien2005/AntaShop-Website/config"
	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/bavien2005/AntaShop-Website/models"
	"github.com/bavien2005/AntaShop-Website/utils"
)

// identityFromIDToken reads the shopper identity from the ID token in the
// exchange response, verified against Google's signing keys. Returns false
// when no verifier is configured or the token is absent/invalid; the caller
// falls back to the userinfo endpoint.
func identityFromIDToken(ctx context.Context, token *oauth2.Token) (models.GoogleUserInfo, bool) {
	if config.OIDCVerifier == nil {
		return models.GoogleUserInfo{}, false
	}
	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return models.GoogleUserInfo{}, false
	}
	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		log.Printf("⚠️ ID token verification failed: %v", err)
		return models.GoogleUserInfo{}, false
	}
	var info models.GoogleUserInfo
	if err := idToken.Claims(&info); err != nil {
		log.Printf("⚠️ ID token claims decode failed: %v", err)
		return models.GoogleUserInfo{}, false
	}
	if info.Sub == "" {
		info.Sub = idToken.Subject
	}
	return info, true
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Verifies the state token, exchanges the authorization code, issues a JWT cookie, triggers the guest-cart merge and redirects back to the storefront.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Router /api/v1/auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	if config.GoogleOAuthConfig == nil {
		redirectToFrontendWithError(c, "Google login is not configured")
		return
	}

	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ OAuth state mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	token, err := config.GoogleOAuthConfig.Exchange(context.Background(), code)
	if err != nil {
		log.Printf("❌ OAuth exchange failed: %v", err)
		redirectToFrontendWithError(c, "Failed to exchange token")
		return
	}

	googleUser, verified := identityFromIDToken(context.Background(), token)
	if !verified {
		client := config.GoogleOAuthConfig.Client(context.Background(), token)
		resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
		if err != nil {
			log.Printf("❌ Failed to get user info: %v", err)
			redirectToFrontendWithError(c, "Failed to get user info")
			return
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			redirectToFrontendWithError(c, "Failed to read user info")
			return
		}

		if err := json.Unmarshal(body, &googleUser); err != nil {
			log.Printf("❌ Decode failed: %v", err)
			redirectToFrontendWithError(c, "Failed to decode user info")
			return
		}
	}

	googleID := googleUser.Sub
	if googleID == "" {
		googleID = googleUser.ID
	}
	if googleID == "" {
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}

	jwtToken, err := utils.GenerateJWT(googleID, googleUser.Email, googleUser.Name)
	if err != nil {
		log.Printf("❌ JWT error: %v", err)
		redirectToFrontendWithError(c, "Failed to generate token")
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", jwtToken, 24*60*60, "/", "", isProd, true)

	userResponse := models.UserResponse{
		ID:            googleID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		Provider:      "google",
		EmailVerified: googleUser.EmailVerified || googleUser.VerifiedEmail,
		Avatar:        googleUser.Picture,
	}
	// Short-lived, readable by the popup window
	userJSON, _ := json.Marshal(userResponse)
	c.SetCookie("user_data", string(userJSON), 60, "/", "", isProd, false)

	// Kicks off the guest-cart merge for this session.
	if sessionID, ok := middleware.GetSessionIDFromContext(c); ok && notifier != nil {
		notifier.NotifyLogin(sessionID, googleID)
	}

	log.Printf("✅ Login successful: %s", googleUser.Email)
	c.Redirect(http.StatusTemporaryRedirect, config.GetFrontendURL()+"/auth-popup")
}
