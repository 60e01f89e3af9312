// Package promexpose attaches a Prometheus metrics-exposition endpoint
// to an existing router.
//
// # Quick Start
//
// Attach the endpoint with a freshly created registry that already has
// the Go and process collectors registered:
//
//	r := chi.NewRouter()
//
//	att, err := promexpose.Attach(r, "/metrics")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The returned Attachment exposes the resolved registry provider and
// the handler that was registered, so callers can register their own
// collectors or mount the handler elsewhere.
//
// # Configuring the Attachment
//
// Attach accepts at most one extra argument, dispatched by type:
//
//	// Your own registry (you keep ownership):
//	promexpose.Attach(r, "/metrics", registry)
//
//	// Middleware applied ahead of the handler, in order:
//	promexpose.Attach(r, "/metrics", []promexpose.Middleware{
//	    promexpose.RateLimit(5, 10),
//	})
//
//	// A different HTTP verb:
//	promexpose.Attach(r, "/metrics", "post")
//
//	// A registry provider, resolved per request:
//	promexpose.Attach(r, "/metrics", func(ctx context.Context) (prometheus.Gatherer, error) {
//	    return registryFor(ctx), nil
//	})
//
//	// Everything at once:
//	promexpose.Attach(r, "/metrics", promexpose.Options{
//	    Provider:   promexpose.GathererOf(registry),
//	    Method:     "get",
//	    Middleware: []promexpose.Middleware{promexpose.RateLimit(5, 10)},
//	})
//
// # Routers
//
// Any router with a chi-style Method(method, pattern, handler)
// registration satisfies Router directly. For other frameworks, use
// the adapter packages:
//
//	import "github.com/kroma-labs/promexpose/adapters/gin"
//	import "github.com/kroma-labs/promexpose/adapters/echo"
//	import "github.com/kroma-labs/promexpose/adapters/fiber"
//	import "github.com/kroma-labs/promexpose/adapters/grpcgateway"
package promexpose
