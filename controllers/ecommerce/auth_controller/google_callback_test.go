package auth_controller

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/bavien2005/AntaShop-Website/config"
)

const testClientID = "client-123.apps.googleusercontent.com"

func setupVerifier(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	config.OIDCVerifier = oidc.NewVerifier(
		"https://accounts.google.com",
		&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}},
		&oidc.Config{ClientID: testClientID},
	)
	t.Cleanup(func() { config.OIDCVerifier = nil })
	return key
}

func signedIDToken(t *testing.T, key *rsa.PrivateKey, claims jwt.MapClaims) *oauth2.Token {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return (&oauth2.Token{}).WithExtra(map[string]interface{}{"id_token": raw})
}

func TestIdentityFromIDToken(t *testing.T) {
	key := setupVerifier(t)

	token := signedIDToken(t, key, jwt.MapClaims{
		"iss":            "https://accounts.google.com",
		"aud":            testClientID,
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
		"sub":            "google-uid-1",
		"email":          "shopper@example.com",
		"email_verified": true,
		"name":           "Shopper",
		"picture":        "https://example.com/p.png",
	})

	info, ok := identityFromIDToken(context.Background(), token)
	if !ok {
		t.Fatal("valid ID token was rejected")
	}
	if info.Sub != "google-uid-1" {
		t.Errorf("sub = %q, want google-uid-1", info.Sub)
	}
	if info.Email != "shopper@example.com" {
		t.Errorf("email = %q, want shopper@example.com", info.Email)
	}
	if !info.EmailVerified {
		t.Error("email_verified claim not carried over")
	}
	if info.Name != "Shopper" {
		t.Errorf("name = %q, want Shopper", info.Name)
	}
}

func TestIdentityFromIDTokenRejectsWrongAudience(t *testing.T) {
	key := setupVerifier(t)

	token := signedIDToken(t, key, jwt.MapClaims{
		"iss": "https://accounts.google.com",
		"aud": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
		"sub": "google-uid-1",
	})

	if _, ok := identityFromIDToken(context.Background(), token); ok {
		t.Fatal("ID token for another client was accepted")
	}
}

func TestIdentityFromIDTokenRejectsExpired(t *testing.T) {
	key := setupVerifier(t)

	token := signedIDToken(t, key, jwt.MapClaims{
		"iss": "https://accounts.google.com",
		"aud": testClientID,
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"sub": "google-uid-1",
	})

	if _, ok := identityFromIDToken(context.Background(), token); ok {
		t.Fatal("expired ID token was accepted")
	}
}

func TestIdentityFromIDTokenWithoutToken(t *testing.T) {
	setupVerifier(t)

	if _, ok := identityFromIDToken(context.Background(), &oauth2.Token{}); ok {
		t.Fatal("exchange response without an ID token was accepted")
	}
}

func TestIdentityFromIDTokenWithoutVerifier(t *testing.T) {
	key := setupVerifier(t)
	token := signedIDToken(t, key, jwt.MapClaims{
		"iss": "https://accounts.google.com",
		"aud": testClientID,
		"exp": time.Now().Add(time.Hour).Unix(),
		"sub": "google-uid-1",
	})
	config.OIDCVerifier = nil

	if _, ok := identityFromIDToken(context.Background(), token); ok {
		t.Fatal("identity decoded with no verifier configured")
	}
}
