package config

import (
	"log"
	"net/http"
	"time"
)

// Upstream service endpoints. The backend (auth, cart, payment, cloud
// upload, product) is a set of external REST collaborators; this
// service only consumes their documented HTTP APIs.
var (
	// APIBaseURL serves auth, cart and payment endpoints.
	APIBaseURL string

	// ProductServiceURL, when set, points the admin product CRUD at a
	// real product service; when empty the admin store operates
	// entirely against its local document.
	ProductServiceURL string

	// CloudUploadURL receives multipart image uploads when Cloudinary
	// is not configured.
	CloudUploadURL string

	// HTTPClient is shared by all upstream clients. 10s matches the
	// default request timeout used across the frontend.
	HTTPClient *http.Client
)

func InitServices() {
	APIBaseURL = GetEnv("API_BASE_URL", "http://localhost:8080")
	ProductServiceURL = GetEnv("PRODUCT_SERVICE_URL", "")
	CloudUploadURL = GetEnv("CLOUD_UPLOAD_URL", APIBaseURL)

	HTTPClient = &http.Client{Timeout: 10 * time.Second}

	log.Printf("[config] API base URL: %s", APIBaseURL)
	if ProductServiceURL == "" {
		log.Println("⚠️  PRODUCT_SERVICE_URL not set, admin product CRUD runs against the local document store")
	} else {
		log.Printf("[config] product service: %s", ProductServiceURL)
	}
}
