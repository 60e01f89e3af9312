package promexpose

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Provider resolves the registry to expose. It is called once per
// incoming request with the request context, so implementations may
// pick a registry dynamically or fetch one from elsewhere.
//
// Exactly one Provider is active per attachment. It is never
// reassigned after Attach returns, so concurrent requests share it
// without coordination.
type Provider func(ctx context.Context) (prometheus.Gatherer, error)

// GathererOf returns a Provider that always yields g.
//
// Every call resolves to the same instance, so repeated scrapes
// observe the same registry.
func GathererOf(g prometheus.Gatherer) Provider {
	return func(context.Context) (prometheus.Gatherer, error) {
		return g, nil
	}
}

// ProviderOf lifts a synchronous registry function into the Provider
// contract. Downstream code never distinguishes the two shapes.
func ProviderOf(fn func() prometheus.Gatherer) Provider {
	return func(context.Context) (prometheus.Gatherer, error) {
		return fn(), nil
	}
}

// DefaultRegistry returns a new registry with the Go runtime and
// process collectors already registered.
//
// This is the registry Attach creates when no provider or registry is
// supplied. The returned registry is owned by the caller; promexpose
// never tears it down.
func DefaultRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}
