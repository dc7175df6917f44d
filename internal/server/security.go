package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ClientLimiter gives every client IP its own token bucket holding limit
// tokens that refill over window. A bucket idle for a whole window is full
// again, so it is evicted and recreated on the next request.
type ClientLimiter struct {
	mu       sync.Mutex
	buckets  *expirable.LRU[string, *rate.Limiter]
	refill   rate.Limit
	burst    int
	rejected atomic.Int64
	now      func() time.Time
}

// NewClientLimiter allows limit requests per IP in any window
func NewClientLimiter(window time.Duration, limit int) *ClientLimiter {
	return &ClientLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](RateLimitMaxClients, nil, window),
		refill:  rate.Every(window / time.Duration(limit)),
		burst:   limit,
		now:     time.Now,
	}
}

// Allow takes a token from the IP's bucket
func (l *ClientLimiter) Allow(ip string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets.Get(ip)
	if !ok {
		bucket = rate.NewLimiter(l.refill, l.burst)
	}
	l.buckets.Add(ip, bucket)
	l.mu.Unlock()

	if bucket.AllowN(l.now(), 1) {
		return true
	}
	if n := l.rejected.Add(1); n%rateLimitLogEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "rejected_total", n)
	}
	return false
}

// RateLimitMiddleware answers 429 once a client's bucket is empty
func RateLimitMiddleware(trustedProxies []string, limiter *ClientLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP is the peer address, or the last X-Forwarded-For hop when the
// peer is a trusted proxy.
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	return strings.TrimSpace(forwarded[strings.LastIndex(forwarded, ",")+1:])
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware stamps the browser hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for _, kv := range securityHeaders {
				h.Set(kv[0], kv[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
