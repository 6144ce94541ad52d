package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const testSecret = "test-secret"

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func serve(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), RequestLogger(newTestLogger(t)))
	r.GET("/ping", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, http.MethodGet, "/ping", nil)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	w = serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, "req-1", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/panic", func(c *ginext.Context) {
		panic("boom")
	})

	w := serve(r, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.Contains(t, w.Body.String(), `"code":"INTERNAL"`)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(1, 2)
	now := time.Date(2026, 5, 14, 8, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))

	now = now.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
}

func TestRateLimit(t *testing.T) {
	r := ginext.New("test")
	r.Use(RateLimit(NewIPRateLimiter(0.001, 1), newTestLogger(t)))
	r.GET("/ping", func(c *ginext.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/ping", nil).Code)
}

func operatorRouter() http.Handler {
	r := ginext.New("test")
	r.GET("/admin", RequireOperator(testSecret), func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(ActorKey))
	})
	return r
}

func TestRequireOperator(t *testing.T) {
	r := operatorRouter()

	token, err := IssueOperatorToken(testSecret, "operator-1", RoleOperator, time.Hour)
	require.NoError(t, err)

	w := serve(r, http.MethodGet, "/admin", map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "operator-1", w.Body.String())
}

func TestRequireOperator_Rejects(t *testing.T) {
	r := operatorRouter()

	buyer := signClaims(t, "buyer", "buyer-1", time.Now().Add(time.Hour))
	expired := signClaims(t, RoleAdmin, "operator-1", time.Now().Add(-time.Minute))
	anonymous := signClaims(t, RoleOperator, "", time.Now().Add(time.Hour))
	foreign, err := IssueOperatorToken("other-secret", "operator-1", RoleAdmin, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"expired", "Bearer " + expired, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized},
		{"no subject", "Bearer " + anonymous, http.StatusUnauthorized},
		{"wrong role", "Bearer " + buyer, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			w := serve(r, http.MethodGet, "/admin", headers)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func signClaims(t *testing.T, role, subject string, expires time.Time) string {
	t.Helper()
	claims := OperatorClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestIssueOperatorToken_Validates(t *testing.T) {
	tests := []struct {
		name    string
		secret  string
		subject string
		role    string
		ttl     time.Duration
	}{
		{"empty secret", "", "operator-1", RoleOperator, time.Hour},
		{"empty subject", testSecret, "", RoleOperator, time.Hour},
		{"buyer role", testSecret, "operator-1", "buyer", time.Hour},
		{"non-positive ttl", testSecret, "operator-1", RoleAdmin, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := IssueOperatorToken(tt.secret, tt.subject, tt.role, tt.ttl)
			assert.Error(t, err)
		})
	}
}
