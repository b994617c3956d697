package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"teadiary/internal/core/auth"
	"teadiary/internal/domain"
	"teadiary/internal/transport/http/response"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newJWTer(t *testing.T, ttl time.Duration) *auth.JWTer {
	t.Helper()
	j, err := auth.New("0123456789abcdef0123456789abcdef", "teadiary", "teadiary-web", ttl)
	if err != nil {
		t.Fatalf("auth.New: %v", err)
	}
	return j
}

func protectedRouter(j *auth.JWTer, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthJWT(j)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": c.GetString(KeyUserID),
			"email":  c.GetString(KeyEmail),
			"role":   c.GetString(KeyRole),
		})
	})
	r.GET("/secure", handlers...)
	return r
}

func get(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errBody(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (raw %q)", err, w.Body.String())
	}
	return body
}

func TestAuthJWTMissingHeader(t *testing.T) {
	r := protectedRouter(newJWTer(t, time.Hour))

	w := get(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	body := errBody(t, w)
	if body.Code != response.CodeUnauthorized || body.Message != "Требуется авторизация" {
		t.Fatalf("unexpected envelope %+v", body)
	}
}

func TestAuthJWTMalformedToken(t *testing.T) {
	r := protectedRouter(newJWTer(t, time.Hour))

	w := get(r, "definitely.not.a-jwt")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if body := errBody(t, w); body.Message != "Недействительный токен" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestAuthJWTForeignSignature(t *testing.T) {
	signer, err := auth.New("another-secret-key-32-chars-long", "teadiary", "teadiary-web", time.Hour)
	if err != nil {
		t.Fatalf("auth.New: %v", err)
	}
	token, err := signer.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := protectedRouter(newJWTer(t, time.Hour))

	if w := get(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthJWTExpiredToken(t *testing.T) {
	j := newJWTer(t, 0)
	token, err := j.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := protectedRouter(j)

	if w := get(r, token); w.Code != http.StatusUnauthorized {
		t.Fatalf("zero-lifetime token accepted, status = %d", w.Code)
	}
}

func TestAuthJWTClaimsReachHandler(t *testing.T) {
	j := newJWTer(t, time.Hour)
	token, err := j.Issue("user-1", "anna@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	r := protectedRouter(j)

	w := get(r, token)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["userId"] != "user-1" || body["email"] != "anna@example.com" || body["role"] != domain.RoleAdmin {
		t.Fatalf("claims in context = %v", body)
	}
}

func TestRequireRole(t *testing.T) {
	j := newJWTer(t, time.Hour)
	r := protectedRouter(j, RequireRole(domain.RoleAdmin))

	plain, err := j.Issue("user-1", "a@b.c", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	w := get(r, plain)
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
	if body := errBody(t, w); body.Code != response.CodeForbidden || body.Message != "Доступ запрещен" {
		t.Fatalf("unexpected envelope %+v", body)
	}

	admin, err := j.Issue("user-2", "root@b.c", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if w := get(r, admin); w.Code != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", w.Code)
	}
}
