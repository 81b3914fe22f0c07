package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/takumines/meal-finder/internal/shared/auth"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth("dev"))
	router.GET("/api/v1/sessions/current", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c)})
	})
	router.GET("/api/v1/auth/google/start", func(c *gin.Context) {
		c.Status(http.StatusFound)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth("dev"))
	router.OPTIONS("/api/v1/sessions", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/sessions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthAcceptsGuestHeader(t *testing.T) {
	router := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/current", nil)
	req.Header.Set("X-Guest-Id", "guest-123")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if body := resp.Body.String(); body != `{"userId":"guest:guest-123"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAuthRejectsMissingIdentity(t *testing.T) {
	router := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/current", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthAcceptsSignedJWT(t *testing.T) {
	router := authRouter()

	token, err := auth.SignJWT(auth.Claims{Sub: "google:user-1", Email: "u@example.com"})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/current", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if body := resp.Body.String(); body != `{"userId":"google:user-1"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestAuthRejectsGarbageToken(t *testing.T) {
	router := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/current", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestAuthSkipsGoogleRoutes(t *testing.T) {
	router := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.Code)
	}
}
