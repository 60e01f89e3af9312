// Package grpcgateway adapts grpc-gateway's runtime.ServeMux for
// promexpose, so the metrics endpoint can be served from the same mux
// as the gateway's HTTP/JSON API.
//
// # Quick Start
//
//	gwmux := runtime.NewServeMux()
//
//	// Register gRPC services with gwmux...
//
//	att, err := gwpromexpose.Attach(gwmux, "/metrics")
//	if err != nil {
//	    log.Fatal(err)
//	}
package grpcgateway

import (
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/kroma-labs/promexpose"
	"github.com/rs/zerolog/log"
)

// Router wraps a grpc-gateway ServeMux as a promexpose.Router.
//
//	att, err := promexpose.Attach(gwpromexpose.Router(gwmux), "/metrics", registry)
func Router(mux *runtime.ServeMux) promexpose.Router {
	return router{mux: mux}
}

type router struct {
	mux *runtime.ServeMux
}

func (a router) Method(method, pattern string, h http.Handler) {
	err := a.mux.HandlePath(method, pattern, func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		h.ServeHTTP(w, r)
	})
	if err != nil {
		// HandlePath only fails on an unparseable path pattern; the
		// path is caller-supplied and forwarded verbatim.
		log.Error().Err(err).Str("pattern", pattern).
			Msg("grpcgateway: failed to register metrics endpoint")
	}
}

// Attach registers the metrics endpoint on a grpc-gateway ServeMux.
// It accepts the same optional configuration argument as
// promexpose.Attach.
func Attach(mux *runtime.ServeMux, path string, opts ...any) (*promexpose.Attachment, error) {
	return promexpose.Attach(Router(mux), path, opts...)
}
