package middleware

import (
	"context"
	"errors"
	"estate/shared"
	"estate/shared/cache"
	"estate/shared/constant"
	"estate/transport/http/response"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"
)

// RateLimit counts requests per client address and user agent in Redis. The counter
// expires WindowSeconds after the last request; a cache outage lets traffic through.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limits.Enable {
				next.ServeHTTP(w, r)

				return
			}

			key := shared.BuildCacheKey(cacheKeyRateLimit, clientIP(r), userAgent(r))

			count, err := a.hits(r.Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, letting request through")
				next.ServeHTTP(w, r)

				return
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limits.MaxRequests-count)))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			if count > limits.MaxRequests {
				header.Set(constant.RequestHeaderRetryAfter, strconv.Itoa(limits.WindowSeconds))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), key, count, limits.WindowSeconds); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to store rate limit counter")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hits returns the request count including the current one.
func (a *appMiddleware) hits(ctx context.Context, key string) (int, error) {
	var count int

	err := a.cache.Get(ctx, key, &count)
	if errors.Is(err, cache.Nil) {
		return 1, nil
	}

	if err != nil {
		return 0, fmt.Errorf("reading rate limit counter: %w", err)
	}

	return count + 1, nil
}

func userAgent(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownUserAgent
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the peer address
// without its port.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")

		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return strings.TrimSpace(realIP)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
