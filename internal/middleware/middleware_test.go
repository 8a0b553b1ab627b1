package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/pause-manager/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func actorRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(cfg))
	r.GET("/who", func(c *gin.Context) {
		c.String(http.StatusOK, Actor(c))
	})
	return r
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAuth_DisabledWithoutSecret(t *testing.T) {
	r := actorRouter(&config.Config{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/who", nil))

	if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
		t.Fatalf("got %d %q", w.Code, w.Body.String())
	}
}

func TestAuth_Enabled(t *testing.T) {
	cfg := &config.Config{JWTSecret: "s3cret"}
	r := actorRouter(cfg)

	valid := signed(t, "s3cret", jwt.MapClaims{
		"sub":  "admin@pause.fr",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	numeric := signed(t, "s3cret", jwt.MapClaims{"sub": 42})
	expired := signed(t, "s3cret", jwt.MapClaims{
		"sub": "x",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	wrongKey := signed(t, "other", jwt.MapClaims{"sub": "x"})
	noSub := signed(t, "s3cret", jwt.MapClaims{"role": "admin"})

	cases := []struct {
		name   string
		header string
		status int
		actor  string
	}{
		{"valid", "Bearer " + valid, http.StatusOK, "admin@pause.fr"},
		{"numeric subject", "bearer " + numeric, http.StatusOK, "42"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized, ""},
		{"no subject", "Bearer " + noSub, http.StatusUnauthorized, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/who", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.status, w.Body.String())
			}
			if tc.actor != "" && w.Body.String() != tc.actor {
				t.Fatalf("actor = %q, want %q", w.Body.String(), tc.actor)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://admin.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://admin.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "http://admin.test" {
		t.Fatal("allowed origin must be reflected")
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatal("unknown origin must not be reflected")
	}

	req = httptest.NewRequest(http.MethodOptions, "/x", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d", w.Code)
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(ContextRequestID)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(HeaderRequestID)
	if len(generated) != 36 || w.Body.String() != generated {
		t.Fatalf("generated id = %q body = %q", generated, w.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get(HeaderRequestID) != "abc-123" {
		t.Fatal("incoming id must be propagated")
	}
}
