package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func newTestMiddleware() *Middleware {
	policy := NewDefaultPolicy([]string{"/healthz"}, []string{"/metrics"})
	return NewMiddleware(testSecret, policy)
}

func TestMiddlewareExemptPath(t *testing.T) {
	called := false
	handler := newTestMiddleware().Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if !called {
		t.Fatal("exempt path must reach handler without a token")
	}
}

func TestMiddlewareMissingToken(t *testing.T) {
	handler := newTestMiddleware().Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/billing/overview", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d", rec.Code)
	}
}

func TestMiddlewareAdminAllowed(t *testing.T) {
	var gotRole Role
	var gotSubject string
	handler := newTestMiddleware().Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRole = RoleFromContext(r.Context())
		gotSubject = SubjectFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/overview", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if gotRole != RoleAdmin || gotSubject != "user-1" {
		t.Fatalf("identity: role=%s subject=%s", gotRole, gotSubject)
	}
}

func TestMiddlewareClientForbidden(t *testing.T) {
	handler := newTestMiddleware().Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("client role must not reach the management API")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "client", time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status: got=%d", rec.Code)
	}
}

func TestMiddlewareExpiredToken(t *testing.T) {
	handler := newTestMiddleware().Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("expired token must not reach handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/overview", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", -time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status: got=%d", rec.Code)
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := []struct {
		in    string
		want  Role
		valid bool
	}{
		{"admin", RoleAdmin, true},
		{" Admin ", RoleAdmin, true},
		{"CLIENT", RoleClient, true},
		{"root", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		role, ok := NormalizeRole(tc.in)
		if ok != tc.valid {
			t.Fatalf("NormalizeRole(%q) valid: got=%v want=%v", tc.in, ok, tc.valid)
		}
		if ok && role != tc.want {
			t.Fatalf("NormalizeRole(%q): got=%s want=%s", tc.in, role, tc.want)
		}
	}
}
