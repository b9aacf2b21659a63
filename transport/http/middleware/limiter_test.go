package middleware_test

import (
	"context"
	"errors"
	"estate/config"
	"estate/infras/otel/mocks"
	"estate/shared/cache"
	cacheMocks "estate/shared/cache/mocks"
	"estate/shared/constant"
	"estate/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limitedHandler(t *testing.T, enable bool) (http.Handler, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, redisCache)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return app.RateLimit()(next), redisCache
}

func serve(handler http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
	req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.7, 10.0.0.1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestRateLimitDisabled(t *testing.T) {
	handler, _ := limitedHandler(t, false)

	rec := serve(handler)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitFirstRequest(t *testing.T) {
	handler, redisCache := limitedHandler(t, true)

	redisCache.EXPECT().Get(gomock.Any(), "limiter:203.0.113.7:unknown", gomock.Any()).Return(cache.Nil)
	redisCache.EXPECT().Save(gomock.Any(), "limiter:203.0.113.7:unknown", 1, 60).Return(nil)

	rec := serve(handler)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
	assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}

func TestRateLimitExceeded(t *testing.T) {
	handler, redisCache := limitedHandler(t, true)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*int)) = 2

			return nil
		})

	rec := serve(handler)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimitFailsOpenOnCacheError(t *testing.T) {
	handler, redisCache := limitedHandler(t, true)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	rec := serve(handler)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitUsesPeerAddressWithoutPort(t *testing.T) {
	handler, redisCache := limitedHandler(t, true)

	redisCache.EXPECT().Get(gomock.Any(), "limiter:192.0.2.10:estate-tests", gomock.Any()).Return(cache.Nil)
	redisCache.EXPECT().Save(gomock.Any(), "limiter:192.0.2.10:estate-tests", 1, 60).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/viewings", nil)
	req.RemoteAddr = "192.0.2.10:54321"
	req.Header.Set(constant.RequestHeaderUserAgent, "estate-tests")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitExceededSetsRetryAfter(t *testing.T) {
	handler, redisCache := limitedHandler(t, true)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*int)) = 5

			return nil
		})

	rec := serve(handler)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get(constant.RequestHeaderRetryAfter))
	assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
}
