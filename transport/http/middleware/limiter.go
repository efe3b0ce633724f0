package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
	"staysync/transport/http/response"

	"github.com/rs/zerolog/log"
)

const cacheKeyRateLimit = "limiter"

// RateLimit counts requests per caller in fixed windows kept in redis. Operator calls are counted
// per API key and anonymous calls, such as channel webhooks, per client address. When redis is
// unreachable requests pass through uncounted.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limits.Enable {
				next.ServeHTTP(w, r)

				return
			}

			count, err := a.hit(r.Context(), shared.BuildCacheKey(cacheKeyRateLimit, a.caller(r)), limits.WindowSeconds)
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limits.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			if count > limits.MaxRequests {
				response.WithRequestLimitExceeded(w, limits.WindowSeconds)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// hit records one request under key and returns the count of the current window.
func (a *appMiddleware) hit(ctx context.Context, key string, windowSeconds int) (int, error) {
	var count int

	err := a.cache.Get(ctx, key, &count)
	if err != nil && !errors.Is(err, cache.Nil) {
		return 0, fmt.Errorf("failed to read request count: %w", err)
	}

	count++

	if err = a.cache.Save(ctx, key, count, windowSeconds); err != nil {
		return 0, fmt.Errorf("failed to store request count: %w", err)
	}

	return count, nil
}

// caller names the bucket a request is counted in. API keys are hashed before they reach redis.
func (a *appMiddleware) caller(r *http.Request) string {
	if apiKey := r.Header.Get(constant.RequestHeaderAPIKey); apiKey != "" {
		sum := sha256.Sum256([]byte(apiKey))

		return "key:" + hex.EncodeToString(sum[:8])
	}

	return "ip:" + a.getClientIP(r)
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
