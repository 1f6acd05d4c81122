package web

import (
	"math"
	"net/http"
	"strconv"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/promptvault/internal/logger"
)

// HeaderRetryAfter tells rate-limited clients when to come back (seconds).
const HeaderRetryAfter = "Retry-After"

// RateLimiter is a token bucket shared by every request to the API.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter allows perSecond requests per second on average, with a
// burst of the same size. A non-positive rate disables limiting.
func NewRateLimiter(perSecond float64) *RateLimiter {
	if perSecond <= 0 {
		return &RateLimiter{bucket: rate.NewLimiter(rate.Inf, 0)}
	}
	burst := max(1, int(math.Ceil(perSecond)))
	return &RateLimiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wrap rejects requests with 429 once the bucket is empty.
func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.bucket.Allow() {
			retry := max(1, int(math.Ceil(1/float64(l.bucket.Limit()))))
			logger.Warn("rate limited %s %s", r.Method, r.URL.Path)
			w.Header().Set(HeaderRetryAfter, strconv.Itoa(retry))
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
