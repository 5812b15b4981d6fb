package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/bavien2005/AntaShop-Website/events"
	"github.com/bavien2005/AntaShop-Website/utils"
)

type logoutRecorder struct {
	sessions []string
}

func (r *logoutRecorder) OnLogin(sessionID, userID string) {}

func (r *logoutRecorder) OnLogout(sessionID string) {
	r.sessions = append(r.sessions, sessionID)
}

func newAuthRouter(notifier *events.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(EnsureSession())
	router.Use(AuthMiddleware(notifier))
	router.GET("/me", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	return router
}

func TestAuthMiddlewareInvalidTokenBroadcastsLogout(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	recorder := &logoutRecorder{}
	notifier := events.NewNotifier()
	notifier.Register(recorder)
	router := newAuthRouter(notifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-1"})
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if len(recorder.sessions) != 1 || recorder.sessions[0] != "sess-1" {
		t.Errorf("logout broadcasts = %v, want [sess-1]", recorder.sessions)
	}
}

func TestAuthMiddlewareMissingTokenDoesNotBroadcast(t *testing.T) {
	recorder := &logoutRecorder{}
	notifier := events.NewNotifier()
	notifier.Register(recorder)
	router := newAuthRouter(notifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-1"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if len(recorder.sessions) != 0 {
		t.Errorf("absent token broadcast a logout: %v", recorder.sessions)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := utils.GenerateJWT("user-9", "u@example.com", "U")
	if err != nil {
		t.Fatal(err)
	}

	recorder := &logoutRecorder{}
	notifier := events.NewNotifier()
	notifier.Register(recorder)
	router := newAuthRouter(notifier)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sess-1"})
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "user-9" {
		t.Errorf("userID = %q, want user-9", w.Body.String())
	}
	if len(recorder.sessions) != 0 {
		t.Errorf("valid token broadcast a logout: %v", recorder.sessions)
	}
}
