package promexpose

import "net/http"

// Middleware is a function that wraps an http.Handler.
//
// Middleware passed to Attach runs ahead of the metrics handler in the
// order given, composed with Chain().
//
// Example:
//
//	func LoggingMiddleware(next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        log.Printf("Request: %s %s", r.Method, r.URL.Path)
//	        next.ServeHTTP(w, r)
//	    })
//	}
type Middleware func(http.Handler) http.Handler

// Chain composes multiple middleware into a single middleware.
//
// Middleware are applied in the order provided. The first middleware
// is the outermost (runs first on request, last on response).
//
// Example:
//
//	handler := promexpose.Chain(
//	    promexpose.RateLimit(5, 10),
//	    myAccessLog,
//	)(metricsHandler)
func Chain(middlewares ...Middleware) Middleware {
	return func(next http.Handler) http.Handler {
		// Apply in reverse order so first middleware is outermost
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}
