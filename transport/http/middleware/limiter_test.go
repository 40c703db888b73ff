package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	otelMocks "stayadmin/infras/otel/mocks"
	cacheMocks "stayadmin/shared/cache/mocks"
	"stayadmin/shared/constant"
	"stayadmin/transport/http/middleware"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newLimited(t *testing.T, enable bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := newConfig()
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	mw := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, cache)
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return mw.Tracing(mw.RateLimit()(ok)), cache
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled skips the cache", func(t *testing.T) {
		handler, _ := newLimited(t, false)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("within the window", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(2), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(3), nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(int64(0), errors.New("redis down"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("keys on the forwarded client", func(t *testing.T) {
		handler, cache := newLimited(t, true)
		cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).DoAndReturn(func(_ any, key string, _ int) (int64, error) {
			assert.Contains(t, key, "203.0.113.7")

			return 1, nil
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
