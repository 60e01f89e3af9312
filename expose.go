package promexpose

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// ErrNilRouter is returned when Attach is called without a router.
	ErrNilRouter = errors.New("promexpose: router is required")

	// ErrTooManyOptions is returned when Attach receives more than one
	// configuration argument.
	ErrTooManyOptions = errors.New("promexpose: at most one option argument is accepted")

	// ErrBadOption is returned when the configuration argument has an
	// unsupported type.
	ErrBadOption = errors.New("promexpose: unsupported option type")

	// ErrUnknownMethod is returned for HTTP verb names outside the
	// recognized set.
	ErrUnknownMethod = errors.New("promexpose: unrecognized HTTP method")

	// ErrNilProvider is returned when a nil provider function is passed.
	ErrNilProvider = errors.New("promexpose: provider must not be nil")

	// ErrNilMiddleware is returned when the middleware list contains a
	// nil entry.
	ErrNilMiddleware = errors.New("promexpose: middleware entries must not be nil")
)

// Options configures an attachment. All fields are optional.
type Options struct {
	// Provider resolves the registry to expose. If nil, Attach creates
	// a DefaultRegistry and serves that.
	Provider Provider

	// Method is the HTTP verb the endpoint is registered under.
	// Case-insensitive. Default: "get".
	Method string

	// Middleware runs ahead of the handler, in order (first entry
	// outermost).
	Middleware []Middleware
}

// Attachment is the result of Attach.
type Attachment struct {
	// Provider is the resolved registry provider, normalized so every
	// call goes through the same context-taking contract regardless of
	// how the registry was supplied.
	Provider Provider

	// Handler is the handler that was registered, middleware included.
	Handler http.Handler
}

// Attach registers a metrics-exposition endpoint on router under path.
//
// The optional third argument configures the attachment and is
// dispatched by type, first match wins:
//
//  1. prometheus.Gatherer — expose this registry
//  2. []Middleware — run these ahead of the handler
//  3. Options / *Options — full configuration
//  4. string — HTTP verb name
//  5. Provider, func(ctx) (prometheus.Gatherer, error), or
//     func() prometheus.Gatherer — registry provider
//
// With no argument, Attach creates a DefaultRegistry (Go and process
// collectors included) and exposes it under GET.
//
// All validation happens before any registry is created or anything is
// registered; Attach either completes fully or has no effect.
func Attach(router Router, path string, opts ...any) (*Attachment, error) {
	if router == nil {
		return nil, ErrNilRouter
	}
	if len(opts) > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyOptions, len(opts))
	}

	var arg any
	if len(opts) == 1 {
		arg = opts[0]
	}

	cfg, err := resolveOptions(arg)
	if err != nil {
		return nil, err
	}

	method, err := resolveMethod(cfg.Method)
	if err != nil {
		return nil, err
	}
	for i, m := range cfg.Middleware {
		if m == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilMiddleware, i)
		}
	}

	provider := cfg.Provider
	if provider == nil {
		provider = GathererOf(DefaultRegistry())
	}

	handler := Chain(cfg.Middleware...)(Handler(provider))
	router.Method(method, path, handler)

	return &Attachment{Provider: provider, Handler: handler}, nil
}

// resolveOptions normalizes the polymorphic configuration argument
// into Options. Dispatch order is significant: the registry capability
// (Gatherer) is tested first, then the structural shapes, then the
// provider shorthands.
func resolveOptions(arg any) (Options, error) {
	switch v := arg.(type) {
	case nil:
		return Options{}, nil
	case prometheus.Gatherer:
		return Options{Provider: GathererOf(v)}, nil
	case []Middleware:
		return Options{Middleware: v}, nil
	case Options:
		return v, nil
	case *Options:
		if v == nil {
			return Options{}, nil
		}
		return *v, nil
	case string:
		return Options{Method: v}, nil
	case Provider:
		if v == nil {
			return Options{}, ErrNilProvider
		}
		return Options{Provider: v}, nil
	case func(context.Context) (prometheus.Gatherer, error):
		if v == nil {
			return Options{}, ErrNilProvider
		}
		return Options{Provider: v}, nil
	case func() prometheus.Gatherer:
		if v == nil {
			return Options{}, ErrNilProvider
		}
		return Options{Provider: ProviderOf(v)}, nil
	default:
		return Options{}, fmt.Errorf("%w: %T", ErrBadOption, arg)
	}
}
