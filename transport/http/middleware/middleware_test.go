package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelier/config"
	"hotelier/infras/metrics"
	"hotelier/infras/otel/mocks"
	"hotelier/shared/cache"
	"hotelier/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotelier"
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func newRouter(mw middleware.AppMiddleware) chi.Router {
	r := chi.NewRouter()
	r.Use(mw.Tracing, mw.Logger, mw.Metrics, mw.RateLimit())
	r.Get("/api/hotel/{slug}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	return r
}

func newRedisCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), mr
}

func TestRateLimit(t *testing.T) {
	cfg := newConfig()
	redisCache, _ := newRedisCache(t)

	router := newRouter(middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache, metrics.New(cfg, nil)))

	codes := []int{}
	remaining := []string{}

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/hotel/seaside-inn", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		codes = append(codes, rec.Code)
		remaining = append(remaining, rec.Header().Get("X-RateLimit-Remaining"))
	}

	assert.Equal(t, []int{http.StatusTeapot, http.StatusTeapot, http.StatusTooManyRequests}, codes)
	assert.Equal(t, []string{"1", "0", ""}, remaining)

	// Another client has its own window.
	req := httptest.NewRequest(http.MethodGet, "/api/hotel/seaside-inn", nil)
	req.Header.Set("X-Real-IP", "10.0.0.9")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = false

	router := newRouter(middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil, metrics.New(cfg, nil)))

	for range 5 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/seaside-inn", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimit_CacheDown(t *testing.T) {
	cfg := newConfig()
	redisCache, mr := newRedisCache(t)
	mr.Close()

	router := newRouter(middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache, metrics.New(cfg, nil)))

	for range 3 {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/hotel/seaside-inn", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
	}
}

func TestMetrics_RecordsRoutePattern(t *testing.T) {
	cfg := newConfig()
	cfg.App.RateLimiter.Enable = false

	m := metrics.New(cfg, nil)
	router := newRouter(middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil, m))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/hotel/seaside-inn", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `hotelier_http_requests_total{method="GET",route="/api/hotel/{slug}",status="418"} 1`)
}
