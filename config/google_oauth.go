// ════════════════════════════════════════════════════════════
// Path: config/google_oauth.go
// Google OAuth Configuration
// ════════════════════════════════════════════════════════════

package config

import (
	"context"
	"log"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	GoogleOAuthConfig *oauth2.Config
	OIDCVerifier      *oidc.IDTokenVerifier
)

// InitGoogleOAuth initializes the Google OAuth configuration. When the
// client credentials are absent the Google login routes answer 503 and
// the rest of the service runs normally.
func InitGoogleOAuth() {
	ctx := context.Background()

	clientID := os.Getenv("GOOGLE_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")
	redirectURL := os.Getenv("GOOGLE_REDIRECT_URL")

	if clientID == "" || clientSecret == "" {
		log.Println("⚠️  GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set, Google login disabled")
		return
	}

	if redirectURL == "" {
		redirectURL = "http://localhost:8081/api/v1/auth/google/callback"
		log.Printf("⚠️  GOOGLE_REDIRECT_URL not set, using default: %s", redirectURL)
	}

	GoogleOAuthConfig = &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}

	provider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		log.Printf("❌ Failed to create OIDC provider: %v (Google login disabled)", err)
		GoogleOAuthConfig = nil
		return
	}

	OIDCVerifier = provider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	log.Println("✅ Google OAuth initialized successfully")
}

// GetFrontendURL returns the storefront URL used for OAuth redirects.
func GetFrontendURL() string {
	urlFromEnv := os.Getenv("STORE_FRONTEND_URL")
	if urlFromEnv == "" {
		defaultURL := "http://localhost:3000"
		log.Printf("⚠️  STORE_FRONTEND_URL not set, using default: %s", defaultURL)
		return defaultURL
	}
	return urlFromEnv
}
