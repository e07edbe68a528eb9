package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sklad/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doLimitedRequest(t *testing.T, m *RateLimitMiddleware, ip string, userID *uuid.UUID) int {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	limit := m.LimitByIP
	if userID != nil {
		c.Set("userID", *userID)
		limit = m.LimitByUser
	}

	handler := limit(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec.Code
}

func newLimiter(requestsPerSecond, burst int) *RateLimitMiddleware {
	return NewRateLimitMiddleware(&config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: requestsPerSecond,
		Burst:             burst,
	})
}

func TestRateLimitMiddleware_OverBurst(t *testing.T) {
	m := newLimiter(1, 2)
	defer m.Close()

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", nil))
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", nil))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, m, "10.0.0.1", nil))
}

func TestRateLimitMiddleware_PerClientIP(t *testing.T) {
	m := newLimiter(1, 1)
	defer m.Close()

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", nil))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, m, "10.0.0.1", nil))

	// A different client has its own budget
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.2", nil))
}

func TestRateLimitMiddleware_UsersBehindOneNAT(t *testing.T) {
	m := newLimiter(1, 1)
	defer m.Close()

	first := uuid.New()
	second := uuid.New()

	// Two authenticated users on the same IP get separate budgets
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", &first))
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", &second))

	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, m, "10.0.0.1", &first))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, m, "10.0.0.1", &second))
}

func TestRateLimitMiddleware_UserKeyIndependentOfIPKey(t *testing.T) {
	m := newLimiter(1, 1)
	defer m.Close()

	userID := uuid.New()

	// Spending the IP budget does not touch the user budget
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", nil))
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", &userID))
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	m := NewRateLimitMiddleware(&config.RateLimitConfig{Enabled: false, RequestsPerSecond: 1, Burst: 1})
	defer m.Close()

	for range 5 {
		assert.Equal(t, http.StatusOK, doLimitedRequest(t, m, "10.0.0.1", nil))
	}
}

func TestRateLimitMiddleware_CleanupDropsIdleClients(t *testing.T) {
	m := newLimiter(1, 1)
	defer m.Close()

	doLimitedRequest(t, m, "10.0.0.1", nil)
	require.Len(t, m.clients, 1)

	m.cleanup(0)

	assert.Empty(t, m.clients)
}
