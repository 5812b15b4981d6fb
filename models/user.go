package models

// GoogleUserInfo is the userinfo payload from Google's OAuth API. Older
// and newer API versions disagree on field names, so both spellings are
// accepted.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// UserResponse is the identity payload handed to the storefront after
// login.
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Provider      string `json:"provider"`
	EmailVerified bool   `json:"emailVerified"`
	Avatar        string `json:"avatar,omitempty"`
}
