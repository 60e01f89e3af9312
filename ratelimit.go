package promexpose

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit returns middleware that limits request rate using a token
// bucket. Scrape endpoints are cheap but not free; a misconfigured
// scraper can hammer them.
//
// Requests over the limit receive 429 with a JSON error body.
//
// Example:
//
//	promexpose.Attach(r, "/metrics", []promexpose.Middleware{
//	    promexpose.RateLimit(5, 10), // 5 req/sec, bursts up to 10
//	})
func RateLimit(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
